package data

import (
	"fmt"
	"os"

	"github.com/galaxian/game/internal/world"
	"gopkg.in/yaml.v3"
)

// FormationRow is one horizontal run of enemies in a layout file.
type FormationRow struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Count   int    `yaml:"count"`
	Spacing int    `yaml:"spacing"`
	Variant string `yaml:"variant"` // "A" or "B"
}

type formationFile struct {
	Rows []FormationRow `yaml:"rows"`
}

// LoadFormationLayout loads a formation layout YAML. Rows expand left to
// right in file order, which becomes the formation's tie-break order.
func LoadFormationLayout(path string) ([]world.EnemySpawn, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read formation layout: %w", err)
	}
	var f formationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse formation layout: %w", err)
	}
	return f.expand()
}

func (f *formationFile) expand() ([]world.EnemySpawn, error) {
	var spawns []world.EnemySpawn
	for i, row := range f.Rows {
		v, err := parseVariant(row.Variant)
		if err != nil {
			return nil, fmt.Errorf("formation row %d: %w", i, err)
		}
		if row.Count <= 0 {
			return nil, fmt.Errorf("formation row %d: count must be positive", i)
		}
		for n := 0; n < row.Count; n++ {
			spawns = append(spawns, world.EnemySpawn{X: row.X + n*row.Spacing, Y: row.Y, Variant: v})
		}
	}
	if len(spawns) == 0 {
		return nil, fmt.Errorf("formation layout has no enemies")
	}
	return spawns, nil
}

func parseVariant(s string) (world.Variant, error) {
	switch s {
	case "", "A", "a":
		return world.VariantA, nil
	case "B", "b":
		return world.VariantB, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}
