package main

import (
	"iter"
	"strconv"
	"strings"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// parseInt returns an int when s holds one and s itself otherwise, leaving
// the verdict to minefield.NewGameFromValues.
func parseInt(s string) any {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return n
}

func parseList(s string) any {
	if strings.TrimSpace(s) == "" {
		return []int{}
	}
	list := []any{}
	for _, piece := range byPiece(s, ",") {
		list = append(list, parseInt(piece))
	}
	return list
}
