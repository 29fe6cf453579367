package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/warship/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	OutputText = "text"
	OutputJSON = "json"
)

const (
	defaultColumns = 10
	defaultRows    = 10
)

type Config struct {
	Stage   string
	Columns int
	Rows    int
	// Seed is only meaningful when HasSeed is set
	Seed    uint64
	HasSeed bool
	Fleet   []mb.FleetSpec
	Output  string
}

// Load reads the .env file outside of prod and builds the config from
// the environment.
func Load(envFile string) (*Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Config{
		Stage:   getenv("STAGE"),
		Columns: defaultColumns,
		Rows:    defaultRows,
		Fleet:   mb.DefaultFleet(),
		Output:  OutputText,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageProd && cfg.Stage != StageDev {
		return nil, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	var err error
	if v := getenv("BOARD_COLUMNS"); v != "" {
		if cfg.Columns, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid BOARD_COLUMNS: %w", err)
		}
	}
	if v := getenv("BOARD_ROWS"); v != "" {
		if cfg.Rows, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid BOARD_ROWS: %w", err)
		}
	}
	if v := getenv("RNG_SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid RNG_SEED: %w", err)
		}
		cfg.HasSeed = true
	}
	if v := getenv("FLEET"); v != "" {
		if cfg.Fleet, err = ParseFleet(v); err != nil {
			return nil, err
		}
	}
	if v := getenv("OUTPUT"); v != "" {
		if v != OutputText && v != OutputJSON {
			return nil, fmt.Errorf("output must be either text or json, got: %s", v)
		}
		cfg.Output = v
	}

	return &cfg, nil
}

// ParseFleet reads "Name:Length" pairs separated by commas, e.g.
// "Carrier:5,Destroyer:2".
func ParseFleet(value string) ([]mb.FleetSpec, error) {
	entries := strings.Split(value, ",")
	fleet := make([]mb.FleetSpec, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, lengthStr, found := strings.Cut(entry, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid fleet entry, expected Name:Length: %q", entry)
		}
		length, err := strconv.Atoi(strings.TrimSpace(lengthStr))
		if err != nil {
			return nil, fmt.Errorf("invalid ship length in fleet entry %q: %w", entry, err)
		}

		fleet = append(fleet, mb.FleetSpec{Name: strings.TrimSpace(name), Length: length})
	}

	if len(fleet) == 0 {
		return nil, fmt.Errorf("fleet must contain at least one ship")
	}
	return fleet, nil
}
