package invindex

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// StoragePlainImpl stores the mapping as a JSON object of term to id list.
type StoragePlainImpl struct{}

func NewStoragePlainImpl() StoragePlainImpl {
	return StoragePlainImpl{}
}

func (s StoragePlainImpl) Dump(m Mapping, path string) error {
	data, err := marshalMapping(m)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func (s StoragePlainImpl) Load(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return unmarshalMapping(data)
}

func marshalMapping(m Mapping) ([]byte, error) {
	for term := range m {
		if !utf8.ValidString(term) {
			return nil, fmt.Errorf("%w: term %q is not valid utf-8", ErrEncoding, term)
		}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling mapping: %w", err)
	}
	return data, nil
}

func unmarshalMapping(data []byte) (Mapping, error) {
	m := make(Mapping)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return m, nil
}
