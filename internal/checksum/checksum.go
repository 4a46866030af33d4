// Package checksum reads and writes xxhsum-compatible checksum lines.
package checksum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// ErrMalformedLine indicates a line that is neither GNU nor BSD style.
var ErrMalformedLine = errors.New("malformed checksum line")

// Algorithm names a digest width the way xxhsum prints it.
type Algorithm string

const (
	XXH32 Algorithm = "XXH32"
	XXH64 Algorithm = "XXH64"
)

// HexLen returns the number of hex digits in a digest of a.
func (a Algorithm) HexLen() int {
	if a == XXH32 {
		return 8
	}
	return 16
}

// Style selects the line layout.
type Style int

const (
	// GNU is "<digest>  <path>".
	GNU Style = iota
	// BSD is "XXH64 (<path>) = <digest>".
	BSD
)

// Line is one parsed checksum entry.
type Line struct {
	Algorithm Algorithm
	Digest    uint64
	Path      string
}

var (
	gnuLine = mustCompile(`^([0-9a-fA-F]{8}|[0-9a-fA-F]{16}) [ *](.+)$`)
	bsdLine = mustCompile(`^(XXH32|XXH64) \((.+)\) = ([0-9a-fA-F]+)$`)
)

// pattern pairs a coregex matcher with a regexp2 program for the same
// expression. coregex rejects non-matching lines and regexp2 extracts the
// groups; a BSD path group ends at the last ") = " on the line.
type pattern struct {
	match   *coregex.Regex
	capture *regexp2.Regexp
}

func mustCompile(expr string) pattern {
	m, err := coregex.Compile(expr)
	if err != nil {
		panic(err)
	}

	c, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		panic(err)
	}
	c.MatchTimeout = time.Second

	return pattern{match: m, capture: c}
}

// submatch returns the full match followed by every group, or nil.
func (p pattern) submatch(s string) []string {
	if !p.match.MatchString(s) {
		return nil
	}

	m, err := p.capture.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}

	return out
}

// Format renders l in the given style.
func Format(l Line, style Style) string {
	digest := fmt.Sprintf("%0*x", l.Algorithm.HexLen(), l.Digest)
	if style == BSD {
		return fmt.Sprintf("%s (%s) = %s", l.Algorithm, l.Path, digest)
	}
	return digest + "  " + l.Path
}

// Parse recognizes both GNU and BSD style lines. The GNU style carries no
// algorithm name, so it is inferred from the digest length.
func Parse(s string) (Line, error) {
	s = strings.TrimRight(s, "\r\n")

	if m := bsdLine.submatch(s); m != nil {
		alg := Algorithm(m[1])
		if len(m[3]) != alg.HexLen() {
			return Line{}, fmt.Errorf("%w: %s digest %q has %d hex digits", ErrMalformedLine, alg, m[3], len(m[3]))
		}
		return parsed(alg, m[3], m[2])
	}

	if m := gnuLine.submatch(s); m != nil {
		alg := XXH64
		if len(m[1]) == XXH32.HexLen() {
			alg = XXH32
		}
		return parsed(alg, m[1], m[2])
	}

	return Line{}, fmt.Errorf("%w: %q", ErrMalformedLine, s)
}

func parsed(alg Algorithm, hex, path string) (Line, error) {
	d, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return Line{Algorithm: alg, Digest: d, Path: path}, nil
}
