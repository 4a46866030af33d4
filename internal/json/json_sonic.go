//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// NewEncoder creates a streaming encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}
