package invindex

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// encodePostingList stores the gaps between consecutive ids, gob encoded.
func encodePostingList(pl PostingList) ([]byte, error) {
	// 差分を取る
	deltas := make([]DocumentID, len(pl))
	var before DocumentID
	for i, id := range pl {
		deltas[i] = id - before
		before = id
	}

	// Gobでシリアライズ
	buf := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(buf).Encode(deltas); err != nil {
		return nil, fmt.Errorf("encoding posting list: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePostingList(b []byte) (PostingList, error) {
	// Gobでデシリアライズ
	var deltas []DocumentID
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&deltas); err != nil {
		return nil, fmt.Errorf("%w: posting list: %v", ErrDecode, err)
	}

	// 差分から本来のIDへ変換
	pl := make(PostingList, len(deltas))
	var before DocumentID
	for i, d := range deltas {
		before += d
		pl[i] = before
	}
	return pl, nil
}
