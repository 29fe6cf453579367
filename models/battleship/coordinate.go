package battleship

import (
	"strconv"

	cerr "github.com/saeidalz13/warship/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// Coordinate is an immutable address on the grid. Row is always
// zero-based; only ParseCoordinate deals with the 1-based text form.
type Coordinate struct {
	Column byte `json:"column"`
	Row    int  `json:"row"`
}

func NewCoordinate(column byte, row int) Coordinate {
	return Coordinate{Column: column, Row: row}
}

// ParseCoordinate reads tokens such as "B14": an uppercase column letter
// followed by a 1-based row number.
func ParseCoordinate(token string) (Coordinate, error) {
	if token == "" {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "empty token")
	}

	column := token[0]
	if column < 'A' || column > 'Z' {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "column must be an uppercase letter")
	}

	rowPart := token[1:]
	if rowPart == "" {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "missing row number")
	}
	// strconv.Atoi accepts a leading sign, which is not part of the token form
	if rowPart[0] < '0' || rowPart[0] > '9' {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "row must be a decimal number")
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "row must be a decimal number")
	}
	if row < 1 {
		return Coordinate{}, cerr.ErrCoordinateFormat(token, "row must be positive")
	}

	return NewCoordinate(column, row-1), nil
}

// Next returns the neighbouring coordinate one step along the axis
// moved by the orientation.
func (c Coordinate) Next(orientation Orientation) Coordinate {
	if orientation == OrientationVertical {
		return NewCoordinate(c.Column, c.Row+1)
	}
	return NewCoordinate(c.Column+1, c.Row)
}

func (c Coordinate) String() string {
	return string(c.Column) + strconv.Itoa(c.Row+1)
}
