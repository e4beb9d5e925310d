// Package packed implements the record framing used by the packed-binary
// storage policy.
//
// A stream is a sequence of records, one per term. Every record starts with a
// fixed-size header of two little-endian uint32 fields. Each field carries a
// length and a type tag in a single value:
//
//	field = length*10 + type_code
//
// The first field holds the byte length of the term (TypeBytes), the second
// the number of document ids (TypeUint16). The header is followed by the term
// bytes and then by that many little-endian uint16 ids.
package packed

import (
	"errors"
	"fmt"
	"math"
)

type TypeCode uint32

const (
	TypeBytes  TypeCode = 1 // raw byte string
	TypeUint16 TypeCode = 2 // unsigned 16-bit integer
)

func (t TypeCode) String() string {
	switch t {
	case TypeBytes:
		return "bytes"
	case TypeUint16:
		return "uint16"
	default:
		return fmt.Sprintf("TypeCode(%d)", uint32(t))
	}
}

// size returns the byte width of one element of the type.
func (t TypeCode) size() int {
	switch t {
	case TypeBytes:
		return 1
	case TypeUint16:
		return 2
	default:
		return 0
	}
}

const (
	fieldSize  = 4
	HeaderSize = 2 * fieldSize

	// MaxFieldLength is the largest length a tagged field can carry.
	MaxFieldLength = (math.MaxUint32 - 9) / 10
)

var (
	ErrFieldOverflow = errors.New("packed: length does not fit a header field")
	ErrCorrupt       = errors.New("packed: corrupt stream")
)

// EncodeField packs a length and its type tag into one header field.
func EncodeField(length int, t TypeCode) (uint32, error) {
	if t.size() == 0 {
		return 0, fmt.Errorf("packed: unknown type code %d", uint32(t))
	}
	if length < 0 || length > MaxFieldLength {
		return 0, fmt.Errorf("%w: %d (%s)", ErrFieldOverflow, length, t)
	}
	return uint32(length)*10 + uint32(t), nil
}

// DecodeField splits a header field into its length and type tag.
func DecodeField(v uint32) (int, TypeCode) {
	return int(v / 10), TypeCode(v % 10)
}
