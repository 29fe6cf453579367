package message

import (
	mb "github.com/saeidalz13/warship/models/battleship"
)

const (
	CodeShot uint8 = iota
	CodeGameOver
	CodeInvalidInput
	CodeGameStarted
)

type NoPayload bool

type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

type RespGameStarted struct {
	GameUuid string `json:"game_uuid"`
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	Ships    int    `json:"ships"`
}

type RespShot struct {
	Target      string `json:"target"`
	Outcome     string `json:"outcome"`
	ShipName    string `json:"ship_name,omitempty"`
	SunkenShips int    `json:"sunken_ships"`
	Shots       int    `json:"shots"`
}

type RespGameOver struct {
	Shots       int      `json:"shots"`
	SunkenShips int      `json:"sunken_ships"`
	ShipsCoords []string `json:"ships_coords"`
}

func OutcomeName(outcome uint8) string {
	switch outcome {
	case mb.ShotOutcomeHit:
		return "hit"
	case mb.ShotOutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

func NewRespGameStarted(game *mb.Game) RespGameStarted {
	return RespGameStarted{
		GameUuid: game.Uuid(),
		Columns:  game.Board().ColumnsCount(),
		Rows:     game.Board().RowsCount(),
		Ships:    len(game.Ships()),
	}
}

func NewRespShot(game *mb.Game, result mb.ShotResult) RespShot {
	return RespShot{
		Target:      result.Coordinate.String(),
		Outcome:     OutcomeName(result.Outcome),
		ShipName:    result.ShipName,
		SunkenShips: game.SunkenShips(),
		Shots:       game.Shots(),
	}
}

func NewRespGameOver(game *mb.Game) RespGameOver {
	coords := make([]string, 0)
	for _, ship := range game.Ships() {
		for _, c := range ship.Coordinates() {
			coords = append(coords, c.String())
		}
	}

	return RespGameOver{
		Shots:       game.Shots(),
		SunkenShips: game.SunkenShips(),
		ShipsCoords: coords,
	}
}
