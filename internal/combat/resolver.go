// Package combat provides damage resolution and opponent selection.
package combat

import (
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/entity"
)

// Combatant is the interface for any entity that can take part in a battle.
type Combatant interface {
	GetName() string
	GetType() entity.Type
	GetAttack() int

	TakeDamage(amount int) int // Returns actual damage taken
}

// Roller is the randomness source for damage rolls and opponent choice.
// *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// effectiveness maps the DEFENDER's type to a damage multiplier.
// The attacker's type plays no part.
var effectiveness = map[entity.Type]float64{
	entity.TypeGrass:    2,
	entity.TypeWater:    0.5,
	entity.TypeFire:     0.5,
	entity.TypeNormal:   1,
	entity.TypeElectric: 2,
}

// Multiplier returns the damage multiplier for a defender of the given type.
func Multiplier(defender entity.Type) float64 {
	if m, ok := effectiveness[defender]; ok {
		return m
	}
	return 1
}

// Roll draws a uniform integer in [1, attack]. It returns 0 if attack is not positive.
func Roll(roller Roller, attack int) int {
	if attack < 1 {
		return 0
	}
	return roller.Intn(attack) + 1
}

// ComputeDamage rolls damage for attacker against defender without applying it.
// The result is truncated toward zero after the multiplier is applied.
func ComputeDamage(roller Roller, attacker, defender Combatant) int {
	return scale(Roll(roller, attacker.GetAttack()), defender.GetType())
}

func scale(roll int, defender entity.Type) int {
	return int(float64(roll) * Multiplier(defender))
}

// AttackResult contains the outcome of one attack.
type AttackResult struct {
	Attacker   string
	Target     string
	Roll       int     // Raw roll before the multiplier
	Multiplier float64 // Defender-keyed multiplier
	Damage     int     // Damage actually taken by the target
	Message    string  // Human-readable description
}

// Resolver rolls and applies attacks.
type Resolver struct {
	roller Roller
}

// NewResolver creates a resolver drawing from the given roller.
func NewResolver(roller Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Resolve makes attacker hit target once and applies the damage.
func (r *Resolver) Resolve(attacker, target Combatant) AttackResult {
	roll := Roll(r.roller, attacker.GetAttack())
	damage := target.TakeDamage(scale(roll, target.GetType()))

	return AttackResult{
		Attacker:   attacker.GetName(),
		Target:     target.GetName(),
		Roll:       roll,
		Multiplier: Multiplier(target.GetType()),
		Damage:     damage,
		Message:    fmt.Sprintf("%s attacks %s and deals %d damage.", attacker.GetName(), target.GetName(), damage),
	}
}

// Ensure Creature implements Combatant
var _ Combatant = (*entity.Creature)(nil)
