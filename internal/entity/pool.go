package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownCreature is returned when an ID does not belong to the pool.
	ErrUnknownCreature = errors.New("unknown creature")
	// ErrAlreadyPooled is returned when a creature that already has an ID is added.
	ErrAlreadyPooled = errors.New("creature already pooled")
)

// Pool owns every creature known to the game.
// Creatures keep their insertion order; the pool is append-only.
type Pool struct {
	creatures []*Creature
	byID      map[ID]*Creature
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		byID: make(map[ID]*Creature),
	}
}

// Add assigns the creature a fresh ID and appends it to the pool.
// A creature can only be added once.
func (p *Pool) Add(c *Creature) (ID, error) {
	if c.ID != NoID {
		return NoID, fmt.Errorf("%w: %s (%s)", ErrAlreadyPooled, c.Name, c.ID)
	}
	c.ID = uuid.New()
	p.creatures = append(p.creatures, c)
	p.byID[c.ID] = c
	return c.ID, nil
}

// Get returns the creature with the given ID, or nil if not found.
func (p *Pool) Get(id ID) *Creature {
	return p.byID[id]
}

// Has reports whether the ID belongs to the pool.
func (p *Pool) Has(id ID) bool {
	_, ok := p.byID[id]
	return ok
}

// All returns the creatures in insertion order.
func (p *Pool) All() []*Creature {
	return p.creatures
}

// Count returns the number of creatures in the pool.
func (p *Pool) Count() int {
	return len(p.creatures)
}

// RestoreAll resets every creature to full health.
func (p *Pool) RestoreAll() {
	for _, c := range p.creatures {
		c.Restore()
	}
}
