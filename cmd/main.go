package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/saeidalz13/warship/internal/config"
	cerr "github.com/saeidalz13/warship/internal/error"
	mb "github.com/saeidalz13/warship/models/battleship"
	mm "github.com/saeidalz13/warship/models/message"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func newGame(cfg *config.Config) (*mb.Game, error) {
	opts := make([]mb.ShipOption, 0, 1)
	if cfg.HasSeed {
		opts = append(opts, mb.WithRandomizer(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	return mb.NewGame(cfg.Columns, cfg.Rows, cfg.Fleet, opts...)
}

// run reads one target token per line until every ship is sunk or the
// input ends.
func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	game, err := newGame(cfg)
	if err != nil {
		return err
	}
	log.Printf("game %s started\tboard: %dx%d\tships: %d", game.Uuid(), cfg.Columns, cfg.Rows, len(game.Ships()))

	w := newWriter(cfg.Output, out)
	start := mm.NewMessage[mm.RespGameStarted](mm.CodeGameStarted)
	start.AddPayload(mm.NewRespGameStarted(game))
	if err := w.write(start, game); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		token := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if token == "" {
			continue
		}

		result, err := game.FireToken(token)
		if err != nil {
			msg := mm.NewMessage[mm.NoPayload](mm.CodeInvalidInput)
			msg.AddError(err.Error(), invalidInputHint(err))
			if err := w.write(msg, game); err != nil {
				return err
			}
			continue
		}

		msg := mm.NewMessage[mm.RespShot](mm.CodeShot)
		msg.AddPayload(mm.NewRespShot(game, result))
		if err := w.write(msg, game); err != nil {
			return err
		}

		if game.IsFinished() {
			over := mm.NewMessage[mm.RespGameOver](mm.CodeGameOver)
			over.AddPayload(mm.NewRespGameOver(game))
			log.Printf("game %s finished after %d shots", game.Uuid(), game.Shots())
			return w.write(over, game)
		}
	}

	return scanner.Err()
}

func invalidInputHint(err error) string {
	switch {
	case errors.Is(err, cerr.ErrFormat):
		return "type a column letter followed by a row number, e.g. B7"
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "target is outside of the board"
	case errors.Is(err, cerr.ErrAlreadyShot):
		return "this position was already shot"
	case errors.Is(err, cerr.ErrGameFinished):
		return "the game is over"
	default:
		return "shot rejected"
	}
}

type writer struct {
	format string
	out    io.Writer
	enc    *json.Encoder
}

func newWriter(format string, out io.Writer) writer {
	return writer{format: format, out: out, enc: json.NewEncoder(out)}
}

func (w writer) write(msg interface{}, game *mb.Game) error {
	if w.format == config.OutputJSON {
		return w.enc.Encode(msg)
	}

	var err error
	switch m := msg.(type) {
	case mm.Message[mm.RespGameStarted]:
		_, err = fmt.Fprintf(w.out, "game %s: %d ships on a %dx%d board\n%s", m.Payload.GameUuid, m.Payload.Ships, m.Payload.Columns, m.Payload.Rows, game.Board().Render(true))

	case mm.Message[mm.RespShot]:
		line := fmt.Sprintf("%s: %s", m.Payload.Target, m.Payload.Outcome)
		if m.Payload.Outcome == mm.OutcomeName(mb.ShotOutcomeSunk) {
			line += " " + m.Payload.ShipName
		}
		_, err = fmt.Fprintf(w.out, "%s\n%s", line, game.Board().Render(true))

	case mm.Message[mm.RespGameOver]:
		_, err = fmt.Fprintf(w.out, "all %d ships sunk in %d shots\n", m.Payload.SunkenShips, m.Payload.Shots)

	case mm.Message[mm.NoPayload]:
		_, err = fmt.Fprintf(w.out, "invalid input: %s\n", m.Error.Message)
	}
	return err
}
