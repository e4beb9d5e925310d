package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/kotaroooo0/invindex"
	"github.com/kotaroooo0/invindex/internal/logger"
)

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	var datasets stringsFlag
	fs.Var(&datasets, "dataset", "dataset file with one <id>\\t<text> document per line (repeatable)")
	indexPath := fs.String("index", "", "where to dump the index")
	datasetEncoding := fs.String("dataset-encoding", "utf8", "character encoding of the dataset files")
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("build: at least one -dataset is required")
	}
	if err := requireFlag(fs, "index", *indexPath); err != nil {
		return err
	}
	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	defer common.writeStats()
	log := logger.WithComponent("build")

	enc, err := invindex.LookupEncoding(*datasetEncoding)
	if err != nil {
		return err
	}
	start := time.Now()
	docs, err := loadDatasets(datasets, enc)
	if err != nil {
		return err
	}
	index := invindex.BuildInvertedIndex(docs)
	log.Info("index built", "documents", len(docs), "terms", index.Len(), "elapsed", time.Since(start))

	storage, closeStorage, err := newStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()
	if err := index.Dump(storage, *indexPath); err != nil {
		return err
	}
	log.Info("index dumped", "index", *indexPath, "policy", cfg.Storage.Policy)
	return nil
}

// loadDatasets reads the files concurrently and concatenates their documents
// in the order the files were given.
func loadDatasets(paths []string, enc encoding.Encoding) ([]invindex.Document, error) {
	results := make([][]invindex.Document, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			docs, err := loadDataset(path, enc)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []invindex.Document
	for _, r := range results {
		docs = append(docs, r...)
	}
	return docs, nil
}

func loadDataset(path string, enc encoding.Encoding) ([]invindex.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := invindex.LoadDocuments(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}
