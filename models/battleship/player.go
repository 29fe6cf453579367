package battleship

import (
	cerr "github.com/saeidalz13/warship/internal/error"
)

const (
	ShotOutcomeMiss uint8 = iota
	ShotOutcomeHit
	ShotOutcomeSunk
)

type FleetSpec struct {
	Name   string
	Length int
}

func DefaultFleet() []FleetSpec {
	return []FleetSpec{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

type ShotResult struct {
	Coordinate Coordinate `json:"coordinate"`
	Outcome    uint8      `json:"outcome"`
	ShipName   string     `json:"ship_name,omitempty"`
}

// Player owns one field: the board and the ships placed on it. It is
// the piece that correlates a shot with the ship occupying the cell.
type Player struct {
	board       *Board
	ships       []*Ship
	sunkenShips int
}

func NewPlayer(board *Board) *Player {
	return &Player{board: board}
}

func (p *Player) Board() *Board {
	return p.board
}

// Ships returns a copy of the ship list.
func (p *Player) Ships() []*Ship {
	return append([]*Ship(nil), p.ships...)
}

func (p *Player) SunkenShips() int {
	return p.sunkenShips
}

func (p *Player) IsLoser() bool {
	return len(p.ships) != 0 && p.sunkenShips == len(p.ships)
}

// DeployFleet creates every ship first and then places them one after
// the other, so each placement sees the cells claimed by the previous.
func (p *Player) DeployFleet(fleet []FleetSpec, opts ...ShipOption) error {
	ships := make([]*Ship, 0, len(fleet))
	for _, spec := range fleet {
		ship, err := NewShip(spec.Name, spec.Length, p.board, opts...)
		if err != nil {
			return err
		}
		ships = append(ships, ship)
	}

	for i, ship := range ships {
		if err := ship.PositionShip(); err != nil {
			for _, placed := range ships[:i] {
				p.board.ReleaseCells(placed.coordinates)
			}
			return err
		}
	}

	p.ships = append(p.ships, ships...)
	return nil
}

// AddShip registers a ship that was placed by the caller.
func (p *Player) AddShip(ship *Ship) {
	p.ships = append(p.ships, ship)
}

func (p *Player) FindShip(c Coordinate) *Ship {
	for _, ship := range p.ships {
		if ship.IsOnTarget(c) {
			return ship
		}
	}
	return nil
}

// ReceiveShot resolves an incoming shot. A position is only shot once;
// the board itself does not enforce that.
func (p *Player) ReceiveShot(c Coordinate) (ShotResult, error) {
	marker, err := p.board.Cell(c)
	if err != nil {
		return ShotResult{}, err
	}
	if marker == CellHit || marker == CellMiss {
		return ShotResult{}, cerr.ErrPositionAlreadyShot(c.Column, c.Row)
	}

	result := ShotResult{Coordinate: c, Outcome: ShotOutcomeMiss}

	ship := p.FindShip(c)
	if ship != nil {
		ship.IncreaseDamage()
		result.Outcome = ShotOutcomeHit
		result.ShipName = ship.Name()

		if ship.IsDestroyed() {
			p.sunkenShips++
			result.Outcome = ShotOutcomeSunk
		}
	}

	if err := p.board.MarkShoot(c, ship != nil); err != nil {
		return ShotResult{}, err
	}
	return result, nil
}
