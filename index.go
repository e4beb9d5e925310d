package invindex

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

// PostingList is the set of documents containing a term, kept sorted in
// ascending order without duplicates.
type PostingList []DocumentID

func NewPostingList(ids ...DocumentID) PostingList {
	var pl PostingList
	for _, id := range ids {
		pl = pl.Add(id)
	}
	return pl
}

// Add inserts id keeping the list ascending. Adding an id twice is a no-op.
func (pl PostingList) Add(id DocumentID) PostingList {
	// appending is the common case: documents usually arrive in id order
	if n := len(pl); n == 0 || pl[n-1] < id {
		return append(pl, id)
	}
	i := sort.Search(len(pl), func(i int) bool { return pl[i] >= id })
	if pl[i] == id {
		return pl
	}
	pl = append(pl, 0)
	copy(pl[i+1:], pl[i:])
	pl[i] = id
	return pl
}

func (pl PostingList) Contains(id DocumentID) bool {
	i := sort.Search(len(pl), func(i int) bool { return pl[i] >= id })
	return i < len(pl) && pl[i] == id
}

func (pl PostingList) Size() int {
	return len(pl)
}

// Mapping maps a term to the documents containing it. Every posting list is
// non-empty.
type Mapping map[string]PostingList

func (m Mapping) Clone() Mapping {
	c := make(Mapping, len(m))
	for term, pl := range m {
		c[term] = append(PostingList(nil), pl...)
	}
	return c
}

// Terms returns the keys in ascending byte order.
func (m Mapping) Terms() []string {
	terms := make([]string, 0, len(m))
	for term := range m {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// normalize sorts and deduplicates every posting list in place and rejects
// empty terms or empty lists.
func (m Mapping) normalize() error {
	for term, pl := range m {
		if term == "" {
			return fmt.Errorf("%w: empty term", ErrDecode)
		}
		if len(pl) == 0 {
			return fmt.Errorf("%w: empty posting list for term %q", ErrDecode, term)
		}
		if sort.SliceIsSorted(pl, func(i, j int) bool { return pl[i] < pl[j] }) && !hasAdjacentDuplicates(pl) {
			continue
		}
		m[term] = NewPostingList(pl...)
	}
	return nil
}

func hasAdjacentDuplicates(pl PostingList) bool {
	for i := 1; i < len(pl); i++ {
		if pl[i] == pl[i-1] {
			return true
		}
	}
	return false
}

// InvertedIndex owns a Mapping exclusively and answers AND queries on it.
// It is not safe for concurrent use.
type InvertedIndex struct {
	mapping Mapping
}

func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		mapping: make(Mapping),
	}
}

// NewInvertedIndexFromMapping copies m into a new index.
func NewInvertedIndexFromMapping(m Mapping) (*InvertedIndex, error) {
	c := m.Clone()
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return &InvertedIndex{mapping: c}, nil
}

// Mapping returns a copy of the term to posting list mapping.
func (ii *InvertedIndex) Mapping() Mapping {
	return ii.mapping.Clone()
}

// Len returns the number of distinct terms.
func (ii *InvertedIndex) Len() int {
	return len(ii.mapping)
}

// Dump writes the mapping to path through storage, replacing whatever is there.
func (ii *InvertedIndex) Dump(storage Storage, path string) error {
	defer dumpTimer.UpdateSince(time.Now())
	if err := storage.Dump(ii.mapping, path); err != nil {
		return fmt.Errorf("dump index to %s: %w", path, err)
	}
	slog.Debug("index dumped", "path", path, "terms", len(ii.mapping))
	return nil
}

// Load reads a mapping from path through storage into a new index.
func Load(storage Storage, path string) (*InvertedIndex, error) {
	defer loadTimer.UpdateSince(time.Now())
	m, err := storage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load index from %s: %w", path, err)
	}
	if m == nil {
		m = make(Mapping)
	}
	if err := m.normalize(); err != nil {
		return nil, fmt.Errorf("load index from %s: %w", path, err)
	}
	slog.Debug("index loaded", "path", path, "terms", len(m))
	return &InvertedIndex{mapping: m}, nil
}

// FormatIDs renders ids as a comma-joined list.
func FormatIDs(ids []DocumentID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(s, ",")
}
