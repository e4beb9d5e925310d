package invindex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

type DocumentID uint32

// Document is one parsed dataset line. It is consumed by the indexer and not
// retained by the index.
type Document struct {
	ID      DocumentID
	Name    string
	Content string
}

func NewDocument(id DocumentID, name, content string) Document {
	return Document{
		ID:      id,
		Name:    name,
		Content: content,
	}
}

// Text returns name and content joined by a space.
func (d Document) Text() string {
	if d.Content == "" {
		return d.Name
	}
	return d.Name + " " + d.Content
}

// ParseDocument parses a line of the form "<id>\t<text>". The first
// whitespace-separated word of text becomes the name, the rest the content.
func ParseDocument(line string) (Document, error) {
	if !utf8.ValidString(line) {
		return Document{}, fmt.Errorf("%w: not valid utf-8", ErrInvalidDocument)
	}
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) != 2 {
		return Document{}, fmt.Errorf("%w: expected 2 tab-separated fields, got %d", ErrInvalidDocument, len(fields))
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Document{}, fmt.Errorf("%w: bad id %q: %v", ErrInvalidDocument, fields[0], err)
	}

	text := strings.TrimSpace(fields[1])
	name, content := text, ""
	if i := strings.IndexFunc(text, isSpace); i >= 0 {
		name, content = text[:i], strings.TrimSpace(text[i:])
	}
	return NewDocument(DocumentID(id), name, content), nil
}

// LoadDocuments reads one document per line and stops at the first malformed line.
func LoadDocuments(r io.Reader) ([]Document, error) {
	docs := make([]Document, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		doc, err := ParseDocument(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func LoadDocumentsFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := LoadDocuments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}
