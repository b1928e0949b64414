package minefield

import (
	"strconv"
	"strings"
)

const (
	MinSize = 1
	MaxSize = 20
)

type Cell int8

const (
	Mine Cell = -1
	// 0-8 for an unmined cell with the given number of mined neighbors
)

func (c Cell) String() string {
	switch c {
	case Mine:
		return "B"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// Grid is a square board stored row-major in a flat slice.
type Grid struct {
	size  int
	cells []Cell
}

func NewGrid(size int) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, InvalidSizeError{Size: size}
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	return g, nil
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) At(row, col int) Cell {
	return g.cells[row*g.size+col]
}

func (g *Grid) MineAt(row, col int) bool {
	return g.At(row, col) == Mine
}

func (g *Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c == Mine {
			count++
		}
	}
	return
}

// PlaceMine does not range-check row and col.
func (g *Grid) PlaceMine(row, col int) error {
	i := row*g.size + col
	if g.cells[i] == Mine {
		return DuplicateMineError{Row: row, Col: col}
	}
	g.cells[i] = Mine
	return nil
}

// ComputeNeighborCounts stores on every unmined cell the number of mines
// around it. It must run after the last PlaceMine.
func (g *Grid) ComputeNeighborCounts() {
	for row := range g.size {
		for col := range g.size {
			i := row*g.size + col
			if g.cells[i] == Mine {
				continue
			}
			g.cells[i] = g.countAround(row, col)
		}
	}
}

func (g *Grid) countAround(row, col int) Cell {
	n := 0
	for i := -1; i <= 1; i++ {
		if row+i < 0 || row+i >= g.size {
			continue
		}
		for j := -1; j <= 1; j++ {
			if col+j < 0 || col+j >= g.size {
				continue
			}
			if i == 0 && j == 0 {
				continue
			}
			if g.MineAt(row+i, col+j) {
				n++
			}
		}
	}
	return Cell(n)
}

func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.size)
	for row := range g.size {
		var b strings.Builder
		for _, c := range g.cells[row*g.size : (row+1)*g.size] {
			b.WriteString(c.String())
		}
		rows = append(rows, b.String())
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
