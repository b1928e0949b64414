// Command minefield prints the neighbor counts of a square minefield.
//
//	minefield -n 5 -r 2,3,2,3,1,1,3,1 -c 3,3,1,1,1,2,2,3
//
// Without flags the board above is printed.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
)

var (
	log = logrus.New()

	sizeArg string
	rowsArg string
	colsArg string
	verbose bool
)

const (
	defaultSize = "5"
	defaultRows = "2,3,2,3,1,1,3,1"
	defaultCols = "3,3,1,1,1,2,2,3"
)

func init() {
	flag.StringVar(&sizeArg, "size", defaultSize, "board size N within [1..20]")
	flag.StringVar(&sizeArg, "n", defaultSize, "board size (shorthand)")
	flag.StringVar(&rowsArg, "rows", defaultRows, "comma-separated mine rows R")
	flag.StringVar(&rowsArg, "r", defaultRows, "mine rows (shorthand)")
	flag.StringVar(&colsArg, "cols", defaultCols, "comma-separated mine columns C")
	flag.StringVar(&colsArg, "c", defaultCols, "mine columns (shorthand)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func run(w io.Writer, size, rows, cols string) error {
	n, r, c, err := minefield.CheckTypes(
		parseInt(size), parseList(rows), parseList(cols),
	)
	if err != nil {
		return err
	}
	return minefield.Solution(w, n, r, c)
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{
		"size": sizeArg,
		"rows": rowsArg,
		"cols": colsArg,
	}).Debug("args")

	if err := run(os.Stdout, sizeArg, rowsArg, colsArg); err != nil {
		log.Fatal(err)
	}
}
