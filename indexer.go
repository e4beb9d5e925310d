package invindex

import "time"

type Indexer struct {
	Tokenizer Tokenizer      // 文章分割のためのトークナイザ
	index     *InvertedIndex // 構築中の転置インデックス(メモリ上)
}

func NewIndexer(tokenizer Tokenizer) *Indexer {
	return &Indexer{
		Tokenizer: tokenizer,
		index:     NewInvertedIndex(),
	}
}

// AddDocument adds the document id to the posting list of every term found in
// its name and content.
func (i *Indexer) AddDocument(doc Document) {
	tokens := i.Tokenizer.Tokenize(doc.Text())
	for _, token := range tokens.Tokens {
		i.updatePostingListByToken(doc.ID, token)
	}
	indexedDocuments.Inc(1)
}

func (i *Indexer) updatePostingListByToken(docID DocumentID, token Token) {
	i.index.mapping[token.Term] = i.index.mapping[token.Term].Add(docID)
}

// Build returns the index built so far. The indexer starts over with an empty
// index afterwards.
func (i *Indexer) Build() *InvertedIndex {
	built := i.index
	for _, pl := range built.mapping {
		postingListSizes.Update(int64(pl.Size()))
	}
	i.index = NewInvertedIndex()
	return built
}

// BuildInvertedIndex indexes docs with a WhitespaceTokenizer.
func BuildInvertedIndex(docs []Document) *InvertedIndex {
	defer buildTimer.UpdateSince(time.Now())
	indexer := NewIndexer(NewWhitespaceTokenizer())
	for _, doc := range docs {
		indexer.AddDocument(doc)
	}
	return indexer.Build()
}
