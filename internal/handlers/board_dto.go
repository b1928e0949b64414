package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/minefield"
)

// BoardQuery is the query string form: ?size=3&row=0&col=1&row=1&col=0
type BoardQuery struct {
	Size int   `schema:"size,required"`
	Rows []int `schema:"row"`
	Cols []int `schema:"col"`
}

var queryFields = []struct {
	key, field string
	list       bool
}{
	{"size", minefield.FieldSize, false},
	{"row", minefield.FieldRows, true},
	{"col", minefield.FieldCols, true},
}

// schema drops empty slice values and keeps the last of repeated scalars,
// so both are rejected here.
func malformed(values []string, list bool) bool {
	if !list && len(values) > 1 {
		return true
	}
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}

func ParseBoardQuery(dec *schema.Decoder, src map[string][]string) (BoardQuery, error) {
	var q BoardQuery
	err := dec.Decode(&q, src)

	var multi schema.MultiError
	errors.As(err, &multi)
	for _, f := range queryFields {
		_, failed := multi[f.key]
		if failed || malformed(src[f.key], f.list) {
			return BoardQuery{}, minefield.TypeMismatchError{Field: f.field}
		}
	}

	if err != nil {
		return BoardQuery{}, badRequestError{err}
	}
	return q, nil
}

// BoardRequest is the JSON body form. Fields stay loosely typed so that
// minefield.NewGameFromValues can report which one is not an integer.
type BoardRequest struct {
	Size any `json:"size"`
	Rows any `json:"rows"`
	Cols any `json:"cols"`
}

func DecodeBoardRequest(r io.Reader) (BoardRequest, error) {
	var req BoardRequest
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return req, badRequestError{fmt.Errorf("malformed board request: %w", err)}
	}
	return req, nil
}

type BoardDTO struct {
	Size  int      `json:"size"`
	Mines int      `json:"mines"`
	Rows  []string `json:"rows"`
	Board string   `json:"board"`
}

func NewBoardDTO(g *minefield.Grid) *BoardDTO {
	rows := g.Rows()
	return &BoardDTO{
		Size:  g.Size(),
		Mines: g.Mines(),
		Rows:  rows,
		Board: g.String(),
	}
}
