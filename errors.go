package invindex

import "errors"

var (
	// ErrInvalidDocument is returned for a malformed dataset line.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDecode is returned when persisted bytes cannot be turned back into a mapping.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidLevel is returned when the compressor rejects the configured level.
	ErrInvalidLevel = errors.New("invalid compression level")

	// ErrIDOutOfRange is returned when a document id does not fit the storage format.
	ErrIDOutOfRange = errors.New("document id out of range")

	// ErrEncoding is returned when a term cannot be represented in the configured charset.
	ErrEncoding = errors.New("term not representable in encoding")

	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrUnknownPolicy   = errors.New("unknown storage policy")
)
