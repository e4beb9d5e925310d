package main

import (
	"flag"
	"io"
	"sort"

	"github.com/k0kubun/pp"

	"github.com/kotaroooo0/invindex"
)

type termStat struct {
	Term      string
	Documents int
}

type indexStats struct {
	Terms     int
	Documents int
	Postings  int
	Largest   []termStat
}

func runInspect(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	indexPath := fs.String("index", "", "index to load")
	top := fs.Int("top", 10, "number of terms with the largest posting lists to show")
	noColor := fs.Bool("no-color", false, "disable colored output")
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag(fs, "index", *indexPath); err != nil {
		return err
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

	if *noColor {
		pp.ColoringEnabled = false
	}
	_, err = pp.Fprintln(stdout, collectStats(index.Mapping(), *top))
	return err
}

func collectStats(m invindex.Mapping, top int) indexStats {
	stats := indexStats{Terms: len(m)}
	docs := make(map[invindex.DocumentID]struct{})
	terms := make([]termStat, 0, len(m))
	for term, pl := range m {
		stats.Postings += pl.Size()
		for _, id := range pl {
			docs[id] = struct{}{}
		}
		terms = append(terms, termStat{Term: term, Documents: pl.Size()})
	}
	stats.Documents = len(docs)

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Documents != terms[j].Documents {
			return terms[i].Documents > terms[j].Documents
		}
		return terms[i].Term < terms[j].Term
	})
	if top < len(terms) {
		terms = terms[:top]
	}
	stats.Largest = terms
	return stats
}
