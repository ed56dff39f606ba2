package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/domino14/runestone/board"
	"github.com/domino14/runestone/piece"
	"github.com/domino14/runestone/scorer"
)

const (
	ConfigLogLevel            = "log-level"
	ConfigRows                = "rows"
	ConfigCols                = "cols"
	ConfigPointMod            = "point-mod"
	ConfigBadges              = "badges"
	ConfigPieces              = "pieces"
	ConfigMaxLostPoints       = "max-lost-points"
	ConfigThreshold           = "threshold"
	ConfigThresholdCap        = "threshold-cap"
	ConfigMode                = "mode"
	ConfigAllowSkip           = "allow-skip"
	ConfigTranspositionTable  = "transposition-table"
	ConfigTableMemoryFraction = "tt-fraction-of-mem"
	ConfigPuzzleFile          = "puzzle-file"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of a run. Values come from the built-in
// defaults, then an optional puzzle file, then RUNESTONE_* environment
// variables.
type Config struct {
	*viper.Viper
	catalog piece.Catalog
}

// DefaultConfig is the reference puzzle: pieces A and B on a 4x4 board
// with badges 4 and 2.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New(), catalog: piece.ReferenceCatalog()}
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigRows, 4)
	c.SetDefault(ConfigCols, 4)
	c.SetDefault(ConfigPointMod, scorer.DefaultPointMod)
	c.SetDefault(ConfigBadges, []int{4, 2})
	c.SetDefault(ConfigPieces, []string{"A", "B"})
	c.SetDefault(ConfigMaxLostPoints, 2)
	c.SetDefault(ConfigThreshold, 0)
	c.SetDefault(ConfigThresholdCap, 54)
	c.SetDefault(ConfigMode, "first-satisfactory")
	c.SetDefault(ConfigAllowSkip, false)
	c.SetDefault(ConfigTranspositionTable, true)
	c.SetDefault(ConfigTableMemoryFraction, 0.05)
	c.SetDefault(ConfigPuzzleFile, "")
	return c
}

// Load reads the environment and, if one is named, the puzzle file.
func (c *Config) Load() error {
	c.SetEnvPrefix("runestone")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigPuzzleFile); path != "" {
		if err := c.LoadPuzzleFile(path); err != nil {
			return err
		}
	}
	return c.Validate()
}

func (c *Config) Catalog() piece.Catalog {
	return c.catalog
}

// Badges accepts a list or, from the environment, a space-separated string.
// Entries that are not integers are dropped; Validate reports them.
func (c *Config) Badges() []int {
	badges, _ := c.parseBadges()
	return badges
}

func (c *Config) parseBadges() ([]int, error) {
	var raw []string
	switch v := c.Get(ConfigBadges).(type) {
	case []int:
		return append([]int(nil), v...), nil
	case string:
		raw = strings.Fields(v)
	default:
		raw = c.GetStringSlice(ConfigBadges)
	}
	var badges []int
	var err error
	for _, s := range raw {
		b, perr := strconv.Atoi(strings.TrimSpace(s))
		if perr != nil {
			err = errors.Join(err, fmt.Errorf("badge %q: %w", s, perr))
			continue
		}
		badges = append(badges, b)
	}
	return badges, err
}

// Pieces resolves the configured piece order against the catalog.
func (c *Config) Pieces() ([]*piece.Piece, error) {
	return c.catalog.Sequence(c.GetStringSlice(ConfigPieces))
}

func (c *Config) Rules() board.Rules {
	return board.Rules{
		Rows:          c.GetInt(ConfigRows),
		Cols:          c.GetInt(ConfigCols),
		PointMod:      c.GetInt(ConfigPointMod),
		MaxLostPoints: c.GetInt(ConfigMaxLostPoints),
	}
}

// NewBoard returns an empty board for the configured puzzle.
func (c *Config) NewBoard() *board.Board {
	return board.NewBoard(c.Rules(), c.Badges())
}

func (c *Config) Validate() error {
	r := c.Rules()
	if r.Rows <= 0 || r.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, r.Rows, r.Cols)
	}
	if r.PointMod <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ConfigPointMod)
	}
	if r.MaxLostPoints < 0 && r.MaxLostPoints != board.UnlimitedLoss {
		return fmt.Errorf("%w: %s must be >= 0 or %d", ErrInvalidConfig, ConfigMaxLostPoints, board.UnlimitedLoss)
	}
	badges, err := c.parseBadges()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, b := range badges {
		if b <= 0 {
			return fmt.Errorf("%w: badge %d is not positive", ErrInvalidConfig, b)
		}
	}
	if f := c.GetFloat64(ConfigTableMemoryFraction); f < 0 || f > 1 {
		return fmt.Errorf("%w: %s must be between 0 and 1", ErrInvalidConfig, ConfigTableMemoryFraction)
	}
	if _, err := c.Pieces(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
