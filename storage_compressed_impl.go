package invindex

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding"
)

// ストレージで圧縮したマッピングを扱う実装
//
// StorageCompressedImpl stores the plain JSON form transcoded into a character
// encoding and compressed with zlib. Load must use the same encoding.
type StorageCompressedImpl struct {
	level    int
	encoding encoding.Encoding
}

// NewStorageCompressedImpl does not validate level; the compressor rejects an
// unsupported level when Dump is called.
func NewStorageCompressedImpl(level int, encodingName string) (*StorageCompressedImpl, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &StorageCompressedImpl{
		level:    level,
		encoding: enc,
	}, nil
}

func (s *StorageCompressedImpl) Level() int {
	return s.level
}

func (s *StorageCompressedImpl) Dump(m Mapping, path string) error {
	data, err := marshalMapping(m)
	if err != nil {
		return err
	}
	data, err = encodeBytes(s.encoding, data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, s.level)
	if err != nil {
		return fmt.Errorf("%w: %d: %v", ErrInvalidLevel, s.level, err)
	}
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("compressing mapping: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing mapping: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func (s *StorageCompressedImpl) Load(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	data, err = decodeBytes(s.encoding, data)
	if err != nil {
		return nil, err
	}
	return unmarshalMapping(data)
}
