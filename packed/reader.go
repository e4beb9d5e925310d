package packed

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Record is one decoded term with its posting list.
type Record struct {
	Term []byte
	IDs  []uint16
}

// Reader decodes records from an underlying stream.
type Reader struct {
	r      *bufio.Reader
	header [HeaderSize]byte
	buf    bytes.Buffer
	offset int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record. It returns io.EOF when the stream ends
// exactly on a record boundary and an error wrapping ErrCorrupt when the
// stream is truncated or malformed.
func (r *Reader) Next() (Record, error) {
	n, err := io.ReadFull(r.r, r.header[:])
	switch {
	case err == io.EOF:
		return Record{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Record{}, r.corrupt("partial header: %d of %d bytes", n, HeaderSize)
	case err != nil:
		return Record{}, fmt.Errorf("reading header: %w", err)
	}

	termLen, termType := DecodeField(binary.LittleEndian.Uint32(r.header[0:fieldSize]))
	count, countType := DecodeField(binary.LittleEndian.Uint32(r.header[fieldSize:HeaderSize]))
	if termType != TypeBytes {
		return Record{}, r.corrupt("term field tagged %s, want %s", termType, TypeBytes)
	}
	if countType != TypeUint16 {
		return Record{}, r.corrupt("count field tagged %s, want %s", countType, TypeUint16)
	}
	if termLen == 0 {
		return Record{}, r.corrupt("empty term")
	}
	if count == 0 {
		return Record{}, r.corrupt("empty posting list")
	}

	payload, err := r.readPayload(int64(termLen) + int64(count)*int64(TypeUint16.size()))
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Term: append([]byte(nil), payload[:termLen]...),
		IDs:  make([]uint16, count),
	}
	ids := payload[termLen:]
	for i := range rec.IDs {
		rec.IDs[i] = binary.LittleEndian.Uint16(ids[2*i:])
	}
	r.offset += int64(HeaderSize + len(payload))
	return rec, nil
}

// readPayload grows the buffer as bytes arrive so that a corrupt header
// declaring a huge length fails on the short read instead of allocating it.
func (r *Reader) readPayload(size int64) ([]byte, error) {
	r.buf.Reset()
	n, err := io.CopyN(&r.buf, r.r, size)
	if err == io.EOF {
		return nil, r.corrupt("partial payload: %d of %d bytes", n, size)
	}
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return r.buf.Bytes(), nil
}

func (r *Reader) corrupt(format string, args ...interface{}) error {
	return fmt.Errorf("%w: record at offset %d: %s", ErrCorrupt, r.offset, fmt.Sprintf(format, args...))
}
