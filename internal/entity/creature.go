package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a creature within a Pool.
type ID = uuid.UUID

// NoID is the zero ID, used for "no creature".
var NoID = uuid.Nil

// Creature is a single battling entity.
type Creature struct {
	ID          ID     // Assigned by the pool
	Name        string // Display name (not unique)
	Type        Type   // Elemental type
	MaxHealth   int    // Fixed at creation
	Health      int    // Current health, always within [0, MaxHealth]
	AttackPower int    // Upper bound of the damage roll
}

// NewCreature creates a creature at full health.
// The ID is left unset until the creature is added to a Pool.
func NewCreature(name string, t Type, maxHealth, attackPower int) (*Creature, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("creature %q: invalid type %d", name, t)
	}
	if maxHealth <= 0 {
		return nil, fmt.Errorf("creature %q: max health must be positive, got %d", name, maxHealth)
	}
	if attackPower <= 0 {
		return nil, fmt.Errorf("creature %q: attack power must be positive, got %d", name, attackPower)
	}
	return &Creature{
		Name:        name,
		Type:        t,
		MaxHealth:   maxHealth,
		Health:      maxHealth,
		AttackPower: attackPower,
	}, nil
}

// GetName returns the creature's name.
func (c *Creature) GetName() string { return c.Name }

// GetType returns the creature's type.
func (c *Creature) GetType() Type { return c.Type }

// GetAttack returns the creature's attack power.
func (c *Creature) GetAttack() int { return c.AttackPower }

// IsAlive returns true if the creature has health remaining.
func (c *Creature) IsAlive() bool { return c.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
// Health never drops below zero; non-positive amounts are ignored.
func (c *Creature) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.Health {
		actual = c.Health
	}
	c.Health -= actual
	return actual
}

// Restore resets health to maximum.
func (c *Creature) Restore() {
	c.Health = c.MaxHealth
}

// Describe renders name, type and health for roster listings.
func (c *Creature) Describe() string {
	return fmt.Sprintf("%s (Type: %s, Health: %d/%d)", c.Name, c.Type, c.Health, c.MaxHealth)
}

// Stats renders the per-round health line.
func (c *Creature) Stats() string {
	return fmt.Sprintf("%s Health: %d/%d", c.Name, c.Health, c.MaxHealth)
}
