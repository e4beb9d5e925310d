package packed

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer appends records to an underlying stream. Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf [HeaderSize]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteRecord writes one record. The header is validated before anything is
// written, so an overflow leaves the stream untouched.
func (w *Writer) WriteRecord(term []byte, ids []uint16) error {
	termField, err := EncodeField(len(term), TypeBytes)
	if err != nil {
		return err
	}
	countField, err := EncodeField(len(ids), TypeUint16)
	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(w.buf[0:fieldSize], termField)
	binary.LittleEndian.PutUint32(w.buf[fieldSize:HeaderSize], countField)
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.w.Write(term); err != nil {
		return fmt.Errorf("writing term: %w", err)
	}
	var idBuf [2]byte
	for _, id := range ids {
		binary.LittleEndian.PutUint16(idBuf[:], id)
		if _, err := w.w.Write(idBuf[:]); err != nil {
			return fmt.Errorf("writing posting list: %w", err)
		}
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}
