package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TypeDef describes how a creature type is displayed.
type TypeDef struct {
	Name  string `json:"name" yaml:"name"`   // Type name (e.g., "Fire")
	Color string `json:"color" yaml:"color"` // Hex color code (e.g., "#FF7F27")
}

// CreatureDef defines a creature loaded from data.
type CreatureDef struct {
	ID          string `json:"id" yaml:"id"`                   // Unique identifier (e.g., "charmander")
	Name        string `json:"name" yaml:"name"`               // Display name (e.g., "Charmander")
	Type        string `json:"type" yaml:"type"`               // Type name (e.g., "Fire")
	MaxHealth   int    `json:"maxHealth" yaml:"maxHealth"`     // Maximum health
	AttackPower int    `json:"attackPower" yaml:"attackPower"` // Upper bound of the damage roll
}

// TrainerDef defines the player's trainer and starting roster.
type TrainerDef struct {
	Name   string   `json:"name" yaml:"name"`
	Roster []string `json:"roster" yaml:"roster"` // Creature IDs, in roster order
}

// GameData represents the structure of creatures.json.
type GameData struct {
	Types     []TypeDef     `json:"types" yaml:"types"`
	Creatures []CreatureDef `json:"creatures" yaml:"creatures"`
	Trainer   TrainerDef    `json:"trainer" yaml:"trainer"`
}

// LoadGameData loads the embedded creatures.json file.
func LoadGameData() (*GameData, error) {
	data, err := Load[GameData]("creatures.json")
	if err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("creatures.json: %w", err)
	}
	return &data, nil
}

// LoadGameDataFile loads game data from a YAML file on disk.
func LoadGameDataFile(path string) (*GameData, error) {
	data, err := LoadYAMLFile[GameData](path)
	if err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &data, nil
}

// Validate checks stats and cross references. Type names are checked when
// the creatures are built.
func (d *GameData) Validate() error {
	if len(d.Creatures) == 0 {
		return errors.New("no creatures defined")
	}

	seen := make(map[string]bool, len(d.Creatures))
	for _, c := range d.Creatures {
		if c.ID == "" {
			return fmt.Errorf("creature %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate creature id %q", c.ID)
		}
		seen[c.ID] = true
		if c.MaxHealth <= 0 || c.AttackPower <= 0 {
			return fmt.Errorf("creature %q: maxHealth and attackPower must be positive", c.ID)
		}
	}

	if len(d.Trainer.Roster) == 0 {
		return fmt.Errorf("trainer %q has an empty roster", d.Trainer.Name)
	}
	for _, id := range d.Trainer.Roster {
		if !seen[id] {
			return fmt.Errorf("trainer roster references unknown creature %q", id)
		}
	}
	return nil
}

// CreatureByID returns the creature definition with the given ID, or nil if not found.
func (d *GameData) CreatureByID(id string) *CreatureDef {
	for i := range d.Creatures {
		if d.Creatures[i].ID == id {
			return &d.Creatures[i]
		}
	}
	return nil
}

// Palette maps type names to display colors. Entries with invalid colors are skipped.
func (d *GameData) Palette() map[string]tcell.Color {
	palette := make(map[string]tcell.Color, len(d.Types))
	for _, t := range d.Types {
		color, err := ParseHexColor(t.Color)
		if err != nil {
			continue
		}
		palette[t.Name] = color
	}
	return palette
}
