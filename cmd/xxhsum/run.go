package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"go.dw1.io/xxhash/file"
	"go.dw1.io/xxhash/internal/checksum"
	"go.dw1.io/xxhash/internal/json"
	"go.dw1.io/xxhash/internal/sandbox"
)

type runner struct {
	opts   options
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

type job struct {
	algo checksum.Algorithm
	path string
}

type result struct {
	job
	digest uint64
	err    error
}

type record struct {
	Algorithm checksum.Algorithm `json:"algorithm"`
	Seed      uint64             `json:"seed"`
	Digest    string             `json:"digest"`
	Path      string             `json:"path"`
}

// hash prints the digest of every path in argument order.
func (r *runner) hash(ctx context.Context, paths []string) error {
	jobs := make([]job, len(paths))
	for i, p := range paths {
		jobs[i] = job{algo: r.opts.algo, path: p}
	}

	if err := r.restrict(paths); err != nil {
		return err
	}

	var enc json.Encoder
	if r.opts.json {
		enc = json.NewEncoder(r.stdout)
	}

	failed := false
	for _, res := range r.run(ctx, jobs) {
		if res.err != nil {
			r.log.Error("hash failed", "path", res.path, "algo", res.algo, "err", res.err)
			failed = true
			continue
		}

		line := checksum.Line{Algorithm: res.algo, Digest: res.digest, Path: res.path}
		if enc != nil {
			err := enc.Encode(record{
				Algorithm: res.algo,
				Seed:      r.opts.seed,
				Digest:    fmt.Sprintf("%0*x", res.algo.HexLen(), res.digest),
				Path:      res.path,
			})
			if err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(r.stdout, checksum.Format(line, r.opts.style)); err != nil {
			return err
		}
	}

	if failed {
		return errFailures
	}

	return nil
}

// check verifies every entry of the given checksum lists.
func (r *runner) check(ctx context.Context, lists []string) error {
	var (
		jobs   []job
		want   []uint64
		bad    int
		failed int
	)

	for _, list := range lists {
		lines, malformed, err := r.readList(list)
		if err != nil {
			r.log.Error("reading checksum list failed", "list", list, "err", err)
			failed++
		}

		bad += malformed
		for _, l := range lines {
			jobs = append(jobs, job{algo: l.Algorithm, path: l.Path})
			want = append(want, l.Digest)
		}
	}

	paths := make([]string, len(jobs))
	for i, j := range jobs {
		paths[i] = j.path
	}
	if err := r.restrict(paths); err != nil {
		return err
	}

	for i, res := range r.run(ctx, jobs) {
		status := "OK"
		switch {
		case res.err != nil:
			r.log.Error("hash failed", "path", res.path, "algo", res.algo, "err", res.err)
			status = "FAILED open or read"
			failed++
		case res.digest != want[i]:
			status = "FAILED"
			failed++
		case r.opts.quiet:
			continue
		}

		if _, err := fmt.Fprintf(r.stdout, "%s: %s\n", res.path, status); err != nil {
			return err
		}
	}

	if bad > 0 {
		r.log.Warn("improperly formatted checksum lines", "count", bad)
	}
	if failed > 0 {
		r.log.Warn("computed checksums did not match", "count", failed)
		return errFailures
	}

	return nil
}

func (r *runner) readList(name string) ([]checksum.Line, int, error) {
	var in io.Reader = r.stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		in = f
	}

	var (
		lines     []checksum.Line
		malformed int
	)

	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		if len(sc.Bytes()) == 0 {
			continue
		}

		l, err := checksum.Parse(sc.Text())
		if err != nil {
			r.log.Warn("skipping line", "list", name, "line", n, "err", err)
			malformed++
			continue
		}
		lines = append(lines, l)
	}

	return lines, malformed, sc.Err()
}

// run hashes the jobs with bounded parallelism and returns the results in
// job order. Standard input is read once per algorithm; every "-" job of
// that algorithm shares the digest.
func (r *runner) run(ctx context.Context, jobs []job) []result {
	results := make([]result, len(jobs))

	stdin := make(map[checksum.Algorithm]result)
	for i, j := range jobs {
		if j.path != "-" {
			continue
		}

		res, ok := stdin[j.algo]
		if !ok {
			res = r.hashOne(ctx, j)
			stdin[j.algo] = res
		}
		results[i] = res
	}

	var g errgroup.Group
	g.SetLimit(r.opts.jobs)

	for i, j := range jobs {
		if j.path == "-" {
			continue
		}

		g.Go(func() error {
			results[i] = r.hashOne(ctx, j)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *runner) hashOne(ctx context.Context, j job) result {
	res := result{job: j}
	if err := ctx.Err(); err != nil {
		res.err = err
	} else {
		res.digest, res.err = r.sum(j)
	}

	r.log.Debug("hashed", "path", j.path, "algo", j.algo, "err", res.err)

	return res
}

func (r *runner) sum(j job) (uint64, error) {
	opts := []file.Option{file.WithSeed(r.opts.seed)}
	if !r.opts.mmap {
		opts = append(opts, file.WithoutMmap())
	}

	if j.path == "-" {
		if j.algo == checksum.XXH32 {
			d, err := file.SumReader32(r.stdin, opts...)
			return uint64(d), err
		}
		return file.SumReader64(r.stdin, opts...)
	}

	if j.algo == checksum.XXH32 {
		d, err := file.Sum32(j.path, opts...)
		return uint64(d), err
	}
	return file.Sum64(j.path, opts...)
}

// restrict confines the process to reading paths when --sandbox is set.
func (r *runner) restrict(paths []string) error {
	if !r.opts.sandbox {
		return nil
	}

	files := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "-" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			// Reported as a hash failure later.
			continue
		}
		files = append(files, p)
	}

	err := sandbox.Restrict(sandbox.WithBestEffort(), sandbox.WithReadOnly(files...))
	if errors.Is(err, sandbox.ErrUnsupportedPlatform) {
		r.log.Warn("sandbox unavailable, continuing unrestricted", "err", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}

	r.log.Debug("sandbox enforced", "paths", len(files))

	return nil
}
