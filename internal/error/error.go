package error

import (
	"errors"
	"fmt"
)

var (
	ErrFormat            = errors.New("malformed coordinate")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidLength     = errors.New("invalid ship length")
	ErrOutOfBounds       = errors.New("coordinate out of board bound")
	ErrCellOccupied      = errors.New("cell already occupied by a ship")
	ErrNoPlacement       = errors.New("no free run left for ship")
	ErrAlreadyShot       = errors.New("position already shot")
	ErrNilBoard          = errors.New("ship requires a board")
	ErrShipDamaged       = errors.New("damaged ship can not be moved")
	ErrGameFinished      = errors.New("game is already finished")
)

func ErrCoordinateFormat(token, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrFormat, token, reason)
}

func ErrBoardDimensions(columns, rows int) error {
	return fmt.Errorf("%w\tcolumns: %d\trows: %d", ErrInvalidDimensions, columns, rows)
}

func ErrShipLength(name string, length, maxLength int) error {
	return fmt.Errorf("%w\tship: %s\tlength: %d\tmax: %d", ErrInvalidLength, name, length, maxLength)
}

func ErrCoordinateOutOfBounds(column byte, row int) error {
	return fmt.Errorf("%w\tcolumn: %c\trow: %d", ErrOutOfBounds, column, row)
}

func ErrCellTaken(column byte, row int) error {
	return fmt.Errorf("%w\tcolumn: %c\trow: %d", ErrCellOccupied, column, row)
}

func ErrShipNotPlaceable(name string, length int) error {
	return fmt.Errorf("%w\tship: %s\tlength: %d", ErrNoPlacement, name, length)
}

func ErrPositionAlreadyShot(column byte, row int) error {
	return fmt.Errorf("%w\tcolumn: %c\trow: %d", ErrAlreadyShot, column, row)
}

func ErrDamagedShipMove(name string, damages int) error {
	return fmt.Errorf("%w\tship: %s\tdamages: %d", ErrShipDamaged, name, damages)
}
