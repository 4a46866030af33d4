package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/urfave/cli/v2"

	"go.dw1.io/xxhash/internal/checksum"
)

// errFailures is returned after at least one file failed to hash or verify.
// The individual failures have already been reported.
var errFailures = errors.New("one or more files failed")

type options struct {
	algo    checksum.Algorithm
	seed    uint64
	style   checksum.Style
	json    bool
	check   bool
	jobs    int
	mmap    bool
	sandbox bool
	quiet   bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "xxhsum",
		Usage:     "print or check XXH32/XXH64 checksums",
		ArgsUsage: "[FILE]...",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algo",
				Aliases: []string{"H"},
				Value:   "64",
				Usage:   "hash width: 32 (or 0) for XXH32, 64 (or 1) for XXH64",
			},
			&cli.StringFlag{
				Name:    "seed",
				Value:   "0",
				Usage:   "hash seed, decimal or 0x-prefixed hex",
				EnvVars: []string{"XXHSUM_SEED"},
			},
			&cli.BoolFlag{
				Name:  "bsd",
				Usage: "print BSD-style lines: XXH64 (FILE) = DIGEST",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print one JSON object per file",
			},
			&cli.BoolFlag{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "read checksums from the FILEs and verify them",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   runtime.GOMAXPROCS(0),
				Usage:   "number of files hashed in parallel",
				EnvVars: []string{"XXHSUM_JOBS"},
			},
			&cli.BoolFlag{
				Name:  "no-mmap",
				Usage: "read files with buffered I/O instead of memory mapping",
			},
			&cli.BoolFlag{
				Name:  "sandbox",
				Usage: "restrict the process to read-only access of the named files (Linux Landlock)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "in check mode, do not print OK lines",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format: text or json",
			},
		},
		// Exit handling is left to main so tests can run the app in-process.
		ExitErrHandler: func(*cli.Context, error) {},
		Action:         action,
	}
}

func action(c *cli.Context) error {
	log, err := newLogger(c.App.ErrWriter, c.String("log-level"), c.String("log-format"))
	if err != nil {
		return err
	}

	o, err := parseOptions(c)
	if err != nil {
		return err
	}

	args := c.Args().Slice()
	if len(args) == 0 {
		args = []string{"-"}
	}

	r := &runner{
		opts:   o,
		stdin:  c.App.Reader,
		stdout: c.App.Writer,
		log:    log,
	}

	if o.check {
		return r.check(c.Context, args)
	}

	return r.hash(c.Context, args)
}

func parseOptions(c *cli.Context) (options, error) {
	o := options{
		json:    c.Bool("json"),
		check:   c.Bool("check"),
		jobs:    c.Int("jobs"),
		mmap:    !c.Bool("no-mmap"),
		sandbox: c.Bool("sandbox"),
		quiet:   c.Bool("quiet"),
	}

	switch algo := c.String("algo"); algo {
	case "32", "0":
		o.algo = checksum.XXH32
	case "64", "1":
		o.algo = checksum.XXH64
	default:
		return o, fmt.Errorf("unknown algorithm %q", algo)
	}

	seed, err := strconv.ParseUint(c.String("seed"), 0, 64)
	if err != nil {
		return o, fmt.Errorf("invalid seed: %w", err)
	}
	o.seed = seed

	if c.Bool("bsd") {
		o.style = checksum.BSD
	}

	if o.json && c.Bool("bsd") {
		return o, errors.New("--json and --bsd are mutually exclusive")
	}

	if o.jobs < 1 {
		return o, fmt.Errorf("--jobs must be at least 1, got %d", o.jobs)
	}

	return o, nil
}
