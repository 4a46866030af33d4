package keyed

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ErrUnsupportedKey indicates that a key has no canonical byte encoding.
var ErrUnsupportedKey = errors.New("unsupported key type")

// AppendKey appends the canonical encoding of key to dst and returns the
// extended slice.
//
// Byte slices and strings are length-prefixed, so concatenated encodings of
// composite keys ([]any) stay unambiguous. Integers are encoded little-endian
// at their own width, with int, uint and uintptr widened to 8 bytes. Types
// implementing [encoding.BinaryMarshaler] use their binary form. Anything
// else that [cast.ToStringE] can render (fmt.Stringer, error, json.Number)
// is encoded as that string.
func AppendKey(dst []byte, key any) ([]byte, error) {
	switch k := key.(type) {
	case []byte:
		return appendBytes(dst, k), nil
	case string:
		dst = binary.AppendUvarint(dst, uint64(len(k)))
		return append(dst, k...), nil
	case bool:
		if k {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case int8:
		return append(dst, byte(k)), nil
	case uint8:
		return append(dst, k), nil
	case int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(k)), nil
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, k), nil
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(k)), nil
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, k), nil
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(k)), nil
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, k), nil
	case int:
		return binary.LittleEndian.AppendUint64(dst, uint64(k)), nil
	case uint:
		return binary.LittleEndian.AppendUint64(dst, uint64(k)), nil
	case uintptr:
		return binary.LittleEndian.AppendUint64(dst, uint64(k)), nil
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(k)), nil
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(k)), nil
	case []any:
		dst = binary.AppendUvarint(dst, uint64(len(k)))
		for i, part := range k {
			var err error
			if dst, err = AppendKey(dst, part); err != nil {
				return dst, fmt.Errorf("part %d: %w", i, err)
			}
		}
		return dst, nil
	case encoding.BinaryMarshaler:
		b, err := k.MarshalBinary()
		if err != nil {
			return dst, fmt.Errorf("marshal %T key: %w", key, err)
		}
		return appendBytes(dst, b), nil
	}

	s, err := cast.ToStringE(key)
	if err != nil || key == nil {
		return dst, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}

	return AppendKey(dst, s)
}

func appendBytes(dst, b []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(b)))
	return append(dst, b...)
}
