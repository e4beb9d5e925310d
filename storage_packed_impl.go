package invindex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/kotaroooo0/invindex/packed"
	"golang.org/x/text/encoding"
)

// StoragePackedImpl stores one packed record per term: the term in the
// configured encoding followed by its ids as uint16. Ids above 65535 cannot be
// stored.
type StoragePackedImpl struct {
	encoding encoding.Encoding
}

func NewStoragePackedImpl(encodingName string) (*StoragePackedImpl, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &StoragePackedImpl{
		encoding: enc,
	}, nil
}

func (s *StoragePackedImpl) Dump(m Mapping, path string) error {
	var buf bytes.Buffer
	w := packed.NewWriter(&buf)
	for _, term := range m.Terms() {
		termBytes, err := encodeBytes(s.encoding, []byte(term))
		if err != nil {
			return fmt.Errorf("term %q: %w", term, err)
		}
		pl := m[term]
		ids := make([]uint16, len(pl))
		for i, id := range pl {
			if id > math.MaxUint16 {
				return fmt.Errorf("%w: term %q: id %d exceeds %d", ErrIDOutOfRange, term, id, math.MaxUint16)
			}
			ids[i] = uint16(id)
		}
		if err := w.WriteRecord(termBytes, ids); err != nil {
			return fmt.Errorf("term %q: %w", term, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func (s *StoragePackedImpl) Load(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(Mapping)
	r := packed.NewReader(f)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if errors.Is(err, packed.ErrCorrupt) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		if err != nil {
			return nil, err
		}

		termBytes, err := decodeBytes(s.encoding, rec.Term)
		if err != nil {
			return nil, err
		}
		term := string(termBytes)
		if _, ok := m[term]; ok {
			return nil, fmt.Errorf("%w: %w: duplicate term %q", ErrDecode, packed.ErrCorrupt, term)
		}
		pl := make(PostingList, len(rec.IDs))
		for i, id := range rec.IDs {
			pl[i] = DocumentID(id)
		}
		m[term] = pl
	}
	return m, nil
}
