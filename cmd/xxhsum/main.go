// Command xxhsum prints or checks XXH32 and XXH64 checksums of files.
//
//	xxhsum [-H 32|64] [--seed N] [--bsd|--json] [FILE]...
//	xxhsum --check [CHECKSUM_FILE]...
//
// With no FILE, or when FILE is -, standard input is read.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errFailures) {
			fmt.Fprintf(os.Stderr, "xxhsum: %v\n", err)
		}
		os.Exit(1)
	}
}
