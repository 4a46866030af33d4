package json

// Encoder writes one JSON document per Encode call, each followed by a
// newline.
type Encoder interface {
	Encode(v any) error
}
