package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/kotaroooo0/invindex"
)

func runQuery(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	indexPath := fs.String("index", "", "index to load")
	var queries stringsFlag
	fs.Var(&queries, "query", "whitespace-separated terms that must all match (repeatable)")
	queryFile := fs.String("query-file", "", "file with one query per line, - for stdin")
	queryEncoding := fs.String("query-encoding", "utf8", "character encoding of -query-file")
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag(fs, "index", *indexPath); err != nil {
		return err
	}
	if len(queries) == 0 && *queryFile == "" {
		return fmt.Errorf("query: -query or -query-file is required")
	}
	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	defer common.writeStats()

	storage, closeStorage, err := newStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()
	index, err := invindex.Load(storage, *indexPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	for _, q := range queries {
		fmt.Fprintln(w, invindex.FormatIDs(index.Query(strings.Fields(q))))
	}
	if *queryFile != "" {
		if err := queryFromFile(index, *queryFile, *queryEncoding, stdin, w); err != nil {
			return err
		}
	}
	return w.Flush()
}

func queryFromFile(index *invindex.InvertedIndex, path, encodingName string, stdin io.Reader, w io.Writer) error {
	enc, err := invindex.LookupEncoding(encodingName)
	if err != nil {
		return err
	}
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	for scanner.Scan() {
		fmt.Fprintln(w, invindex.FormatIDs(index.Query(strings.Fields(scanner.Text()))))
	}
	return scanner.Err()
}
