package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	l64 := Line{Algorithm: XXH64, Digest: 0xEF46DB3751D8E999, Path: "empty.txt"}
	require.Equal(t, "ef46db3751d8e999  empty.txt", Format(l64, GNU))
	require.Equal(t, "XXH64 (empty.txt) = ef46db3751d8e999", Format(l64, BSD))

	l32 := Line{Algorithm: XXH32, Digest: 0x02CC5D05, Path: "a b.txt"}
	require.Equal(t, "02cc5d05  a b.txt", Format(l32, GNU))
	require.Equal(t, "XXH32 (a b.txt) = 02cc5d05", Format(l32, BSD))
}

func TestParseRoundTrip(t *testing.T) {
	lines := []Line{
		{Algorithm: XXH64, Digest: 0x0B242D361FDA71BC, Path: "fox.txt"},
		{Algorithm: XXH32, Digest: 0x02CC5D05, Path: "dir/with spaces/file"},
		{Algorithm: XXH64, Digest: 1, Path: "(parens) = tricky"},
	}

	for _, l := range lines {
		for _, style := range []Style{GNU, BSD} {
			got, err := Parse(Format(l, style) + "\n")
			require.NoError(t, err)
			require.Equal(t, l, got)
		}
	}
}

func TestParseBSDPath(t *testing.T) {
	tests := []struct {
		line string
		want Line
	}{
		{
			line: "XXH64 (fox.txt) = 0b242d361fda71bc",
			want: Line{Algorithm: XXH64, Digest: 0x0B242D361FDA71BC, Path: "fox.txt"},
		},
		{
			line: "XXH32 (a) = b) = 02cc5d05",
			want: Line{Algorithm: XXH32, Digest: 0x02CC5D05, Path: "a) = b"},
		},
		{
			line: "XXH64 ((parens) = tricky) = 0000000000000001\r\n",
			want: Line{Algorithm: XXH64, Digest: 1, Path: "(parens) = tricky"},
		},
	}

	for _, tt := range tests {
		got, err := Parse(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		require.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestParseBinaryMarker(t *testing.T) {
	got, err := Parse("ef46db3751d8e999 *blob.bin")
	require.NoError(t, err)
	require.Equal(t, Line{Algorithm: XXH64, Digest: 0xEF46DB3751D8E999, Path: "blob.bin"}, got)
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"not a checksum",
		"abc  short.txt",
		"XXH64 (file) = 02cc5d05",
		"XXH128 (file) = ef46db3751d8e999",
		"ef46db3751d8e999",
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrMalformedLine, "line %q", s)
	}
}
