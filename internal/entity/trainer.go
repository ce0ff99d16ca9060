package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a creature outside the roster is selected.
var ErrInvalidSelection = errors.New("invalid selection")

// Trainer represents the player and their roster.
// The roster holds pool IDs, so health changes are shared with the pool.
type Trainer struct {
	Name   string
	pool   *Pool
	owned  []ID
	active ID
}

// NewTrainer creates a trainer owning the given pool creatures.
func NewTrainer(name string, pool *Pool, owned ...ID) (*Trainer, error) {
	ids := make([]ID, 0, len(owned))
	for _, id := range owned {
		if !pool.Has(id) {
			return nil, fmt.Errorf("trainer %s: %w %s", name, ErrUnknownCreature, id)
		}
		ids = append(ids, id)
	}
	return &Trainer{
		Name:  name,
		pool:  pool,
		owned: ids,
	}, nil
}

// Owns reports whether the creature is in the trainer's roster.
func (t *Trainer) Owns(id ID) bool {
	for _, o := range t.owned {
		if o == id {
			return true
		}
	}
	return false
}

// Owned returns the roster creatures in order.
func (t *Trainer) Owned() []*Creature {
	result := make([]*Creature, 0, len(t.owned))
	for _, id := range t.owned {
		result = append(result, t.pool.Get(id))
	}
	return result
}

// Count returns the roster size.
func (t *Trainer) Count() int {
	return len(t.owned)
}

// ListOwned returns one description per roster creature.
func (t *Trainer) ListOwned() []string {
	lines := make([]string, 0, len(t.owned))
	for _, c := range t.Owned() {
		lines = append(lines, c.Describe())
	}
	return lines
}

// SelectActive makes the creature active. The active creature is left
// unchanged if the creature is not in the roster.
func (t *Trainer) SelectActive(id ID) error {
	if !t.Owns(id) {
		return fmt.Errorf("%s does not own creature %s: %w", t.Name, id, ErrInvalidSelection)
	}
	t.active = id
	return nil
}

// SelectIndex makes the roster creature at index i active.
func (t *Trainer) SelectIndex(i int) error {
	if i < 0 || i >= len(t.owned) {
		return fmt.Errorf("roster index %d out of range [0,%d): %w", i, len(t.owned), ErrInvalidSelection)
	}
	return t.SelectActive(t.owned[i])
}

// Active returns the active creature, or nil if none has been chosen.
func (t *Trainer) Active() *Creature {
	if t.active == NoID {
		return nil
	}
	return t.pool.Get(t.active)
}

// HasActive reports whether an active creature has been chosen.
func (t *Trainer) HasActive() bool {
	return t.active != NoID
}

// ClearActive forgets the active creature.
func (t *Trainer) ClearActive() {
	t.active = NoID
}
