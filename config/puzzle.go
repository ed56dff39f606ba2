package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/runestone/piece"
)

// A PuzzleFile describes a custom puzzle. Omitted fields keep their
// current values.
//
//	rows: 4
//	cols: 4
//	badges: [4, 2]
//	max-lost-points: 2
//	pieces: [A, B]
//	catalog:
//	  A: [[1, 0, 2], [0, 1, 1]]
//	  B: [[1, 0, 1], [0, 1, 2]]
type PuzzleFile struct {
	Rows          *int                `yaml:"rows"`
	Cols          *int                `yaml:"cols"`
	PointMod      *int                `yaml:"point-mod"`
	Badges        []int               `yaml:"badges"`
	Pieces        []string            `yaml:"pieces"`
	MaxLostPoints *int                `yaml:"max-lost-points"`
	Threshold     *int                `yaml:"threshold"`
	AllowSkip     *bool               `yaml:"allow-skip"`
	Catalog       map[string][][3]int `yaml:"catalog"`
}

func ParsePuzzle(data []byte) (*PuzzleFile, error) {
	pf := &PuzzleFile{}
	if err := yaml.Unmarshal(data, pf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return pf, nil
}

func (c *Config) LoadPuzzleFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pf, err := ParsePuzzle(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return c.ApplyPuzzle(pf)
}

// ApplyPuzzle overlays a puzzle onto the config's file layer, so
// environment variables still take precedence. A catalog in the puzzle
// replaces the current one entirely.
func (c *Config) ApplyPuzzle(pf *PuzzleFile) error {
	settings := map[string]any{}
	setInt := func(key string, v *int) {
		if v != nil {
			settings[key] = *v
		}
	}
	setInt(ConfigRows, pf.Rows)
	setInt(ConfigCols, pf.Cols)
	setInt(ConfigPointMod, pf.PointMod)
	setInt(ConfigMaxLostPoints, pf.MaxLostPoints)
	setInt(ConfigThreshold, pf.Threshold)
	if pf.AllowSkip != nil {
		settings[ConfigAllowSkip] = *pf.AllowSkip
	}
	if pf.Badges != nil {
		settings[ConfigBadges] = pf.Badges
	}
	if pf.Pieces != nil {
		settings[ConfigPieces] = pf.Pieces
	}
	if err := c.MergeConfigMap(settings); err != nil {
		return err
	}
	if pf.Catalog != nil {
		cat := piece.Catalog{}
		for name, triples := range pf.Catalog {
			p, err := piece.FromTriples(name, triples)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
			cat[name] = p
		}
		c.catalog = cat
	}
	return nil
}
