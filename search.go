package invindex

import (
	"sort"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Query returns the ids of the documents containing every term, ascending.
// A term missing from the index matches nothing, and so does an empty query.
func (ii *InvertedIndex) Query(terms []string) []DocumentID {
	defer queryTimer.UpdateSince(time.Now())
	if len(terms) == 0 {
		return []DocumentID{}
	}

	lists := make([]PostingList, 0, len(terms))
	for _, term := range terms {
		pl, ok := ii.mapping[term]
		if !ok {
			return []DocumentID{}
		}
		lists = append(lists, pl)
	}
	// 文書数が少ない順に並べる
	sort.Slice(lists, func(i, j int) bool { return lists[i].Size() < lists[j].Size() })

	bitmaps := make([]*roaring.Bitmap, len(lists))
	for i, pl := range lists {
		bitmaps[i] = pl.bitmap()
	}
	result := roaring.FastAnd(bitmaps...)

	ids := make([]DocumentID, 0, result.GetCardinality())
	it := result.Iterator()
	for it.HasNext() {
		ids = append(ids, DocumentID(it.Next()))
	}
	return ids
}

func (pl PostingList) bitmap() *roaring.Bitmap {
	b := roaring.New()
	for _, id := range pl {
		b.Add(uint32(id))
	}
	return b
}
