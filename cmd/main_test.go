package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/saeidalz13/warship/internal/config"
	mb "github.com/saeidalz13/warship/models/battleship"
	mm "github.com/saeidalz13/warship/models/message"
)

func testConfig(output string) *config.Config {
	return &config.Config{
		Stage:   config.StageDev,
		Columns: 4,
		Rows:    4,
		Seed:    5,
		HasSeed: true,
		Fleet:   []mb.FleetSpec{{Name: "Cruiser", Length: 3}, {Name: "Destroyer", Length: 2}},
		Output:  output,
	}
}

// everyCell lists every token of a columns x rows board.
func everyCell(columns, rows int) string {
	var sb strings.Builder
	for c := 0; c < columns; c++ {
		for r := 1; r <= rows; r++ {
			fmt.Fprintf(&sb, "%c%d\n", 'A'+c, r)
		}
	}
	return sb.String()
}

func TestRunJSON(t *testing.T) {
	cfg := testConfig(config.OutputJSON)
	input := "zz\nA1\nA1\nE1\n" + everyCell(cfg.Columns, cfg.Rows)

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}

	scanner := bufio.NewScanner(&out)
	codes := make([]uint8, 0)
	var last []byte
	for scanner.Scan() {
		var msg mm.Message[json.RawMessage]
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}
		codes = append(codes, msg.Code)
		last = append([]byte(nil), scanner.Bytes()...)
	}

	if len(codes) < 4 {
		t.Fatalf("expected at least 4 messages, got: %d", len(codes))
	}
	if codes[0] != mm.CodeGameStarted {
		t.Fatalf("expected first code: %d\tgot: %d", mm.CodeGameStarted, codes[0])
	}
	// "zz" is malformed, "A1" is a valid shot, the repeated A1 and the
	// out of bounds E1 are rejected
	expected := []uint8{mm.CodeInvalidInput, mm.CodeShot, mm.CodeInvalidInput, mm.CodeInvalidInput}
	for i, code := range expected {
		if codes[i+1] != code {
			t.Fatalf("message %d expected code: %d\tgot: %d", i+1, code, codes[i+1])
		}
	}

	var over mm.Message[mm.RespGameOver]
	if err := json.Unmarshal(last, &over); err != nil {
		t.Fatal(err)
	}
	if over.Code != mm.CodeGameOver {
		t.Fatalf("expected last code: %d\tgot: %d", mm.CodeGameOver, over.Code)
	}
	if over.Payload.SunkenShips != 2 {
		t.Fatalf("expected sunken ships: 2\tgot: %d", over.Payload.SunkenShips)
	}
	if len(over.Payload.ShipsCoords) != 5 {
		t.Fatalf("expected ship coordinates: 5\tgot: %d", len(over.Payload.ShipsCoords))
	}
}

func TestRunText(t *testing.T) {
	cfg := testConfig(config.OutputText)

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(strings.ToLower(everyCell(cfg.Columns, cfg.Rows))), &out); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "all 2 ships sunk") {
		t.Fatalf("expected game over line, got:\n%s", text)
	}
	if strings.Contains(text, " S ") {
		t.Fatalf("expected ships to be hidden on the rendered board, got:\n%s", text)
	}
}

func TestRunInvalidBoard(t *testing.T) {
	cfg := testConfig(config.OutputText)
	cfg.Columns = 0

	if err := run(cfg, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for an invalid board")
	}
}
