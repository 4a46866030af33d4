// Package json encodes the machine-readable output of the command line
// tools. It uses sonic on the platforms sonic supports and encoding/json
// everywhere else.
package json
