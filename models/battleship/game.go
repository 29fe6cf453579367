package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/warship/internal/error"
)

type Game struct {
	isFinished bool
	uuid       string
	defender   *Player
	shots      int
}

// NewGame builds a board of the given size and deploys the fleet on it
// at random.
func NewGame(columnsCount, rowsCount int, fleet []FleetSpec, opts ...ShipOption) (*Game, error) {
	board, err := NewBoard(columnsCount, rowsCount)
	if err != nil {
		return nil, err
	}

	defender := NewPlayer(board)
	if err := defender.DeployFleet(fleet, opts...); err != nil {
		return nil, err
	}

	return &Game{
		uuid:     uuid.NewString()[:6],
		defender: defender,
	}, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Defender() *Player {
	return g.defender
}

func (g *Game) Board() *Board {
	return g.defender.Board()
}

func (g *Game) Ships() []*Ship {
	return g.defender.Ships()
}

func (g *Game) Shots() int {
	return g.shots
}

func (g *Game) SunkenShips() int {
	return g.defender.SunkenShips()
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// Fire shoots at c. Rejected shots (out of bounds, already shot, game
// over) are not counted.
func (g *Game) Fire(c Coordinate) (ShotResult, error) {
	if g.isFinished {
		return ShotResult{}, cerr.ErrGameFinished
	}

	result, err := g.defender.ReceiveShot(c)
	if err != nil {
		return ShotResult{}, err
	}

	g.shots++
	if g.defender.IsLoser() {
		g.isFinished = true
	}
	return result, nil
}

func (g *Game) FireToken(token string) (ShotResult, error) {
	c, err := ParseCoordinate(token)
	if err != nil {
		return ShotResult{}, err
	}
	return g.Fire(c)
}
