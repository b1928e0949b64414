package minefield

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation error of this package.
var ErrInvalidInput = errors.New("invalid minefield input")

const (
	FieldSize = "size"
	FieldRows = "rowCoords"
	FieldCols = "colCoords"
)

type TypeMismatchError struct {
	Field string
}

// [TypeMismatchError] implements [error]
func (e TypeMismatchError) Error() string {
	if e.Field == FieldSize {
		return fmt.Sprintf("%s must be an integer", e.Field)
	}
	return fmt.Sprintf("%s must be a list of integers", e.Field)
}

func (e TypeMismatchError) Unwrap() error { return ErrInvalidInput }

type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%s out of [%d,%d]: %d", e.Field, e.Min, e.Max, e.Value)
}

func (e RangeError) Unwrap() error { return ErrInvalidInput }

type LengthMismatchError struct {
	Rows, Cols int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf(
		"coordinates of mines must be equal length (rows = %d, cols = %d)",
		e.Rows, e.Cols,
	)
}

func (e LengthMismatchError) Unwrap() error { return ErrInvalidInput }

type TooManyMinesError struct {
	Count, Max int
}

func (e TooManyMinesError) Error() string {
	return fmt.Sprintf("mine count must be within [0..%d], got %d", e.Max, e.Count)
}

func (e TooManyMinesError) Unwrap() error { return ErrInvalidInput }

// CoordinateOutOfRangeError reports the first mine (by input index) that
// falls outside the grid.
type CoordinateOutOfRangeError struct {
	Index    int
	Row, Col int
	Size     int
}

func (e CoordinateOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"invalid cell coordinates of mine %d (%d, %d), each must be within [0..%d]",
		e.Index, e.Row, e.Col, e.Size-1,
	)
}

func (e CoordinateOutOfRangeError) Unwrap() error { return ErrInvalidInput }

type DuplicateMineError struct {
	Row, Col int
}

func (e DuplicateMineError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) already contains a mine, mine locations must be unique",
		e.Row, e.Col,
	)
}

func (e DuplicateMineError) Unwrap() error { return ErrInvalidInput }

type InvalidSizeError struct {
	Size int
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %d, must be within [%d..%d]", e.Size, MinSize, MaxSize)
}

func (e InvalidSizeError) Unwrap() error { return ErrInvalidInput }
