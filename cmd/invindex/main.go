// Command invindex builds, persists and queries an inverted index over a
// tab-separated document collection.
//
//	invindex build   -dataset docs.tsv -index docs.idx [-policy packed -encoding cp1251]
//	invindex query   -index docs.idx -query "two words" [-query-file queries.txt]
//	invindex inspect -index docs.idx
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const usage = `usage: invindex <command> [flags]

commands:
  build    build an index from dataset files and dump it
  query    load an index and answer AND queries, one result line per query
  inspect  load an index and print statistics

run "invindex <command> -h" for the flags of a command`

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		slog.Error("invindex failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "query":
		return runQuery(args[1:], stdin, stdout)
	case "inspect":
		return runInspect(args[1:], stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}
