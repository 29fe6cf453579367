package battleship

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"

	cerr "github.com/saeidalz13/warship/internal/error"
)

type CellMarker uint8

const (
	CellEmpty CellMarker = iota
	CellShipPresent
	CellHit
	CellMiss
)

// Column keys are letters, so a board can not be wider than the alphabet
const MaxColumnsCount = 26

const firstColumn byte = 'A'

// Grid maps every column letter to its cells, one per row.
type Grid map[byte][]CellMarker

// Creates a new default grid
// All cells are CellEmpty
func NewGrid(columnsCount, rowsCount int) Grid {
	grid := make(Grid, columnsCount)

	for i := 0; i < columnsCount; i++ {
		grid[firstColumn+byte(i)] = make([]CellMarker, rowsCount)
	}
	return grid
}

// Board owns the grid of one player's field. It knows nothing about
// ships; occupancy only shows up as CellShipPresent markers.
type Board struct {
	columnsCount int
	rowsCount    int
	grid         Grid
}

func NewBoard(columnsCount, rowsCount int) (*Board, error) {
	if columnsCount <= 0 || rowsCount <= 0 || columnsCount > MaxColumnsCount {
		return nil, cerr.ErrBoardDimensions(columnsCount, rowsCount)
	}

	return &Board{
		columnsCount: columnsCount,
		rowsCount:    rowsCount,
		grid:         NewGrid(columnsCount, rowsCount),
	}, nil
}

func (b *Board) ColumnsCount() int {
	return b.columnsCount
}

func (b *Board) RowsCount() int {
	return b.rowsCount
}

// Columns returns the valid column letters in order.
func (b *Board) Columns() []byte {
	columns := make([]byte, b.columnsCount)
	for i := range columns {
		columns[i] = firstColumn + byte(i)
	}
	return columns
}

// Grid returns a copy of the cell markers.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.grid))
	for column, cells := range b.grid {
		grid[column] = append([]CellMarker(nil), cells...)
	}
	return grid
}

func (b *Board) IsCoordinateInBounds(c Coordinate) bool {
	if c.Column < firstColumn || int(c.Column-firstColumn) >= b.columnsCount {
		return false
	}
	return c.Row >= 0 && c.Row < b.rowsCount
}

func (b *Board) Cell(c Coordinate) (CellMarker, error) {
	if !b.IsCoordinateInBounds(c) {
		return CellEmpty, cerr.ErrCoordinateOutOfBounds(c.Column, c.Row)
	}
	return b.grid[c.Column][c.Row], nil
}

func (b *Board) IsShipPresent(c Coordinate) (bool, error) {
	marker, err := b.Cell(c)
	if err != nil {
		return false, err
	}
	return marker == CellShipPresent, nil
}

// MarkShoot overwrites whatever marker the cell holds. Guarding against
// repeated shots is up to the caller.
func (b *Board) MarkShoot(c Coordinate, wasHit bool) error {
	if !b.IsCoordinateInBounds(c) {
		return cerr.ErrCoordinateOutOfBounds(c.Column, c.Row)
	}

	if wasHit {
		b.grid[c.Column][c.Row] = CellHit
	} else {
		b.grid[c.Column][c.Row] = CellMiss
	}
	return nil
}

func (b *Board) MarkShipCell(c Coordinate) error {
	if !b.IsCoordinateInBounds(c) {
		return cerr.ErrCoordinateOutOfBounds(c.Column, c.Row)
	}
	b.grid[c.Column][c.Row] = CellShipPresent
	return nil
}

// IsRunFree reports whether every cell is in bounds and empty.
func (b *Board) IsRunFree(cells []Coordinate) bool {
	for _, c := range cells {
		if !b.IsCoordinateInBounds(c) || b.grid[c.Column][c.Row] != CellEmpty {
			return false
		}
	}
	return true
}

// ClaimCells marks all cells as occupied, or none of them. The board
// is left untouched when any cell is out of bounds or not empty.
func (b *Board) ClaimCells(cells []Coordinate) error {
	for _, c := range cells {
		if !b.IsCoordinateInBounds(c) {
			return cerr.ErrCoordinateOutOfBounds(c.Column, c.Row)
		}
		if b.grid[c.Column][c.Row] != CellEmpty {
			return cerr.ErrCellTaken(c.Column, c.Row)
		}
	}

	for _, c := range cells {
		b.grid[c.Column][c.Row] = CellShipPresent
	}
	return nil
}

// ReleaseCells turns CellShipPresent markers back into CellEmpty.
// Hit and miss markers are kept.
func (b *Board) ReleaseCells(cells []Coordinate) {
	for _, c := range cells {
		if b.IsCoordinateInBounds(c) && b.grid[c.Column][c.Row] == CellShipPresent {
			b.grid[c.Column][c.Row] = CellEmpty
		}
	}
}

func (b *Board) CountCells(marker CellMarker) int {
	count := 0
	for _, cells := range b.grid {
		for _, cell := range cells {
			if cell == marker {
				count++
			}
		}
	}
	return count
}

func (m CellMarker) symbol(hideShips bool) string {
	switch m {
	case CellShipPresent:
		if hideShips {
			return "~"
		}
		return "S"
	case CellHit:
		return "X"
	case CellMiss:
		return "O"
	default:
		return "~"
	}
}

// Render draws the board with column letters on top and 1-based row
// numbers on the left. With hideShips the untouched ship cells look
// like water, which is what the opponent gets to see.
func (b *Board) Render(hideShips bool) string {
	var buffer bytes.Buffer
	tabWriter := tabwriter.NewWriter(&buffer, 3, 0, 1, ' ', 0)

	fmt.Fprint(tabWriter, "\t")
	for _, column := range b.Columns() {
		fmt.Fprint(tabWriter, string(column)+"\t")
	}
	fmt.Fprint(tabWriter, "\n")

	for row := 0; row < b.rowsCount; row++ {
		fmt.Fprint(tabWriter, strconv.Itoa(row+1)+"\t")
		for _, column := range b.Columns() {
			fmt.Fprint(tabWriter, b.grid[column][row].symbol(hideShips)+"\t")
		}
		fmt.Fprint(tabWriter, "\n")
	}
	tabWriter.Flush()
	return buffer.String()
}

func (b *Board) String() string {
	return b.Render(false)
}
