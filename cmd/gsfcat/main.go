// Command gsfcat loads a gsf-format graph file and renders it to stdout
// in concise or verbose mode. It is a thin wrapper: the actual
// load/render logic lives in the gsf package, not here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/gsf"
)

func main() {
	var (
		directed = flag.Bool("directed", false, "expect the stream's directed flag to be set")
		matrix   = flag.Bool("matrix", false, "load into a matrix-backed graph instead of a list-backed one")
		verbose  = flag.Bool("verbose", false, "render in verbose mode instead of concise mode")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gsfcat [-directed] [-matrix] [-verbose] <file.gsf>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *directed, *matrix, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "gsfcat:", err)
		os.Exit(1)
	}
}

func run(path string, directed, matrix, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	impl := graph.ListImpl
	if matrix {
		impl = graph.MatrixImpl
	}

	g, err := gsf.Load[struct{}, struct{}](f, directed, impl)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	if verbose {
		return gsf.WriteVerbose[struct{}, struct{}](os.Stdout, g)
	}

	return gsf.WriteConcise[struct{}, struct{}](os.Stdout, g)
}
