package battleship

import (
	"math/rand/v2"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/warship/internal/error"
)

// Randomizer is the source of randomness used for placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

type ShipOption func(*Ship)

func WithRandomizer(r Randomizer) ShipOption {
	return func(s *Ship) {
		if r != nil {
			s.randomizer = r
		}
	}
}

type Ship struct {
	id            string
	name          string
	length        int
	damagesAmount int
	orientation   Orientation
	coordinates   []Coordinate
	board         *Board
	randomizer    Randomizer
}

func NewShip(name string, length int, board *Board, opts ...ShipOption) (*Ship, error) {
	if board == nil {
		return nil, cerr.ErrNilBoard
	}

	maxLength := max(board.ColumnsCount(), board.RowsCount())
	if length <= 0 || length > maxLength {
		return nil, cerr.ErrShipLength(name, length, maxLength)
	}

	ship := &Ship{
		id:         uuid.NewString()[:6],
		name:       name,
		length:     length,
		board:      board,
		randomizer: globalRandomizer{},
	}
	for _, opt := range opts {
		opt(ship)
	}

	return ship, nil
}

func (sh *Ship) ID() string {
	return sh.id
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) DamagesAmount() int {
	return sh.damagesAmount
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) IsPlaced() bool {
	return len(sh.coordinates) != 0
}

// Coordinates returns the occupied run in ascending order along the
// moving axis. Empty until the ship is placed.
func (sh *Ship) Coordinates() []Coordinate {
	return append([]Coordinate(nil), sh.coordinates...)
}

// PositionShip claims a random free straight run on the board. Every
// in-bounds run is enumerated, so the call ends with ErrNoPlacement
// instead of retrying forever once no run is free. Placing an already
// placed ship moves it; the old cells are restored if the move fails.
// A ship that took damage stays where it is.
func (sh *Ship) PositionShip() error {
	if err := sh.checkMovable(); err != nil {
		return err
	}
	previous := sh.coordinates
	sh.board.ReleaseCells(previous)

	runsByOrientation := make(map[Orientation][][]Coordinate, 2)
	orientations := make([]Orientation, 0, 2)
	for _, o := range []Orientation{OrientationHorizontal, OrientationVertical} {
		runs := sh.freeRuns(o)
		if len(runs) == 0 {
			continue
		}
		runsByOrientation[o] = runs
		orientations = append(orientations, o)
	}

	if len(orientations) == 0 {
		sh.restore(previous)
		return cerr.ErrShipNotPlaceable(sh.name, sh.length)
	}

	orientation := orientations[sh.randomizer.IntN(len(orientations))]
	runs := runsByOrientation[orientation]
	run := runs[sh.randomizer.IntN(len(runs))]

	if err := sh.board.ClaimCells(run); err != nil {
		sh.restore(previous)
		return err
	}

	sh.coordinates = run
	sh.orientation = orientation
	return nil
}

// PlaceAt puts the ship on the run starting at anchor.
func (sh *Ship) PlaceAt(anchor Coordinate, orientation Orientation) error {
	if err := sh.checkMovable(); err != nil {
		return err
	}
	previous := sh.coordinates
	sh.board.ReleaseCells(previous)

	run := sh.runFrom(anchor, orientation)
	if err := sh.board.ClaimCells(run); err != nil {
		sh.restore(previous)
		return err
	}

	sh.coordinates = run
	sh.orientation = orientation
	return nil
}

// checkMovable refuses to move a ship with damage or with any of its
// cells no longer marked as ship, since releasing would leave hit
// markers behind and the old run could not be claimed back.
func (sh *Ship) checkMovable() error {
	if sh.damagesAmount > 0 {
		return cerr.ErrDamagedShipMove(sh.name, sh.damagesAmount)
	}
	for _, c := range sh.coordinates {
		if present, err := sh.board.IsShipPresent(c); err != nil || !present {
			return cerr.ErrDamagedShipMove(sh.name, sh.damagesAmount)
		}
	}
	return nil
}

// restore claims the previous run back. If that fails the ship is left
// unplaced so it never lists cells the board does not hold for it.
func (sh *Ship) restore(previous []Coordinate) {
	if len(previous) == 0 {
		return
	}
	if err := sh.board.ClaimCells(previous); err != nil {
		sh.coordinates = nil
	}
}

func (sh *Ship) runFrom(anchor Coordinate, orientation Orientation) []Coordinate {
	run := make([]Coordinate, sh.length)
	run[0] = anchor
	for i := 1; i < sh.length; i++ {
		run[i] = run[i-1].Next(orientation)
	}
	return run
}

// freeRuns lists every run of the ship's length in one orientation
// that fits on the board and crosses no occupied cell.
func (sh *Ship) freeRuns(orientation Orientation) [][]Coordinate {
	maxColumn := sh.board.ColumnsCount()
	maxRow := sh.board.RowsCount()
	if orientation == OrientationVertical {
		maxRow -= sh.length - 1
	} else {
		maxColumn -= sh.length - 1
	}

	runs := make([][]Coordinate, 0)
	for column := 0; column < maxColumn; column++ {
		for row := 0; row < maxRow; row++ {
			run := sh.runFrom(NewCoordinate(firstColumn+byte(column), row), orientation)
			if sh.board.IsRunFree(run) {
				runs = append(runs, run)
			}
		}
	}
	return runs
}

func (sh *Ship) IsOnTarget(c Coordinate) bool {
	for _, coordinate := range sh.coordinates {
		if coordinate == c {
			return true
		}
	}
	return false
}

// IncreaseDamage is not capped; call it once per distinct hit.
func (sh *Ship) IncreaseDamage() {
	sh.damagesAmount++
}

func (sh *Ship) IsDestroyed() bool {
	return sh.damagesAmount >= sh.length
}
