package minefield

import (
	"fmt"
	"io"
)

// NewGame validates the board parameters, builds the grid and places the
// mines in input order. Neighbor counts are left for the caller to compute.
//
// Validation stops at the first failure: size range, list lengths, mine
// count, then every coordinate. Duplicates surface from PlaceMine.
func NewGame(size int, rows, cols []int) (*Grid, error) {
	if err := validate(size, rows, cols); err != nil {
		return nil, err
	}

	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if err := grid.PlaceMine(rows[i], cols[i]); err != nil {
			return nil, err
		}
	}

	return grid, nil
}

func validate(size int, rows, cols []int) error {
	if size < MinSize || size > MaxSize {
		return RangeError{Field: FieldSize, Value: size, Min: MinSize, Max: MaxSize}
	}
	if len(rows) != len(cols) {
		return LengthMismatchError{Rows: len(rows), Cols: len(cols)}
	}
	if maxMines := size * size; len(rows) > maxMines || len(cols) > maxMines {
		return TooManyMinesError{Count: len(rows), Max: maxMines}
	}
	for i := range rows {
		row, col := rows[i], cols[i]
		if row < 0 || row >= size || col < 0 || col >= size {
			return CoordinateOutOfRangeError{Index: i, Row: row, Col: col, Size: size}
		}
	}
	return nil
}

// Solution builds the board, counts neighbors and writes every row to w
// followed by a newline.
func Solution(w io.Writer, size int, rows, cols []int) error {
	grid, err := NewGame(size, rows, cols)
	if err != nil {
		return err
	}
	grid.ComputeNeighborCounts()
	for _, row := range grid.Rows() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
