package invindex

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// LookupEncoding resolves a character encoding by its WHATWG label, e.g.
// "utf8", "cp1251" or "koi8-r".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// encodeBytes transcodes UTF-8 text to enc. Invalid UTF-8 is rejected rather
// than replaced, so a term never changes on its way to disk.
func encodeBytes(enc encoding.Encoding, b []byte) ([]byte, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrEncoding)
	}
	out, err := enc.NewEncoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return out, nil
}

func decodeBytes(enc encoding.Encoding, b []byte) ([]byte, error) {
	if isUTF8(enc) {
		if !utf8.Valid(b) {
			return nil, fmt.Errorf("%w: invalid utf-8", ErrDecode)
		}
		return b, nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}
