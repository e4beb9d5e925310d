package invindex

import (
	"errors"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

var postingsBucket = []byte("postings")

// StorageBoltImpl stores the mapping in a bolt file, one key per term.
type StorageBoltImpl struct {
	timeout time.Duration
}

func NewStorageBoltImpl() *StorageBoltImpl {
	return &StorageBoltImpl{
		timeout: time.Second,
	}
}

func (s *StorageBoltImpl) Dump(m Mapping, path string) error {
	f, tmp, err := createTemp(path)
	if err != nil {
		return err
	}
	f.Close()

	if err := s.write(m, tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return replaceFile(tmp, path)
}

func (s *StorageBoltImpl) write(m Mapping, path string) error {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: s.timeout})
	if err != nil {
		return err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket(postingsBucket)
		if err != nil {
			return err
		}
		for _, term := range m.Terms() {
			v, err := encodePostingList(m[term])
			if err != nil {
				return err
			}
			if err := b.Put([]byte(term), v); err != nil {
				return fmt.Errorf("term %q: %w", term, err)
			}
		}
		return nil
	})
	if closeErr := db.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (s *StorageBoltImpl) Load(path string) (Mapping, error) {
	// bolt.Open creates missing files, even read-only
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{ReadOnly: true, Timeout: s.timeout})
	if err != nil {
		if errors.Is(err, bolt.ErrInvalid) || errors.Is(err, bolt.ErrVersionMismatch) || errors.Is(err, bolt.ErrChecksum) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil, err
	}
	defer db.Close()

	m := make(Mapping)
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(postingsBucket)
		if b == nil {
			return fmt.Errorf("%w: bucket %q not found", ErrDecode, postingsBucket)
		}
		return b.ForEach(func(k, v []byte) error {
			pl, err := decodePostingList(v)
			if err != nil {
				return fmt.Errorf("term %q: %w", k, err)
			}
			m[string(k)] = pl
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
