package invindex

import (
	"strings"
	"unicode"
)

type Token struct {
	Term string
}

func NewToken(term string) Token {
	return Token{Term: term}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// WhitespaceTokenizer splits text on whitespace and keeps every term as is.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() WhitespaceTokenizer {
	return WhitespaceTokenizer{}
}

func (t WhitespaceTokenizer) Tokenize(s string) TokenStream {
	terms := strings.FieldsFunc(s, isSpace)
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
