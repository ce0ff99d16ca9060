package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
)

var (
	// ErrNoActiveCreature is returned when a battle starts before a main creature is chosen.
	ErrNoActiveCreature = errors.New("no active creature")
	// ErrNoOpponentAvailable is returned when no pool creature is eligible to fight.
	ErrNoOpponentAvailable = errors.New("no opponent available")
	// ErrWrongPhase is returned when a battle operation is called in the wrong phase.
	ErrWrongPhase = errors.New("wrong battle phase")
)

// RoundReport describes one resolved round.
type RoundReport struct {
	Round        int
	PlayerAttack combat.AttackResult
	EnemyAttack  combat.AttackResult
	PlayerStats  string // Health line of the player's active creature
	EnemyStats   string // Health line of the opponent
	Outcome      Phase  // PhaseContinuing, PhasePlayerFainted or PhaseEnemyFainted
}

// Battle is the state machine for one fight between the trainer's active
// creature and an opponent. It never blocks: at each decision point it
// stops in PhaseContinuing and waits for Continue or Switch.
type Battle struct {
	phase    Phase
	trainer  *entity.Trainer
	enemy    *entity.Creature
	resolver *combat.Resolver
	round    int
	winner   *entity.Creature
	loser    *entity.Creature
}

// StartBattle picks an opponent for the trainer's active creature and
// returns a battle ready for its first round. If either side has already
// fainted the battle starts decided and no round is fought.
func StartBattle(ctx context.Context, pool *entity.Pool, trainer *entity.Trainer, roller combat.Roller) (*Battle, error) {
	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.start")
	defer span.End()

	b := &Battle{
		phase:    PhaseAwaitingOpponent,
		trainer:  trainer,
		resolver: combat.NewResolver(roller),
	}

	active := trainer.Active()
	if active == nil {
		span.SetAttributes(attribute.String("error", "no_active_creature"))
		return nil, ErrNoActiveCreature
	}

	enemy := combat.ChooseOpponent(ctx, roller, pool, trainer)
	if enemy == nil {
		span.SetAttributes(attribute.String("error", "no_opponent_available"))
		return nil, fmt.Errorf("%w for %s", ErrNoOpponentAvailable, active.Name)
	}

	b.enemy = enemy
	b.phase = PhaseInRound
	b.settle(active)

	span.SetAttributes(
		attribute.String("player", active.Name),
		attribute.String("enemy", enemy.Name),
		attribute.String("phase", b.phase.String()),
	)
	return b, nil
}

// Phase returns the current phase.
func (b *Battle) Phase() Phase { return b.phase }

// Round returns the number of rounds resolved so far.
func (b *Battle) Round() int { return b.round }

// Player returns the trainer's current active creature.
func (b *Battle) Player() *entity.Creature { return b.trainer.Active() }

// Enemy returns the opponent.
func (b *Battle) Enemy() *entity.Creature { return b.enemy }

// Winner returns the winning creature once one side has fainted, or nil.
func (b *Battle) Winner() *entity.Creature { return b.winner }

// Loser returns the fainted creature once one side has fainted, or nil.
func (b *Battle) Loser() *entity.Creature { return b.loser }

// ResolveRound runs one full round: the player's creature attacks, then the
// enemy retaliates even if it was knocked out, then the outcome is evaluated.
// The player's faint is checked first.
func (b *Battle) ResolveRound(ctx context.Context) (RoundReport, error) {
	if b.phase != PhaseInRound {
		return RoundReport{}, fmt.Errorf("%w: cannot resolve round in %s", ErrWrongPhase, b.phase)
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.round")
	defer span.End()

	b.round++
	player := b.trainer.Active()

	report := RoundReport{Round: b.round}
	report.PlayerAttack = b.resolver.Resolve(player, b.enemy)
	report.EnemyAttack = b.resolver.Resolve(b.enemy, player)
	b.phase = PhaseRoundResolved

	report.PlayerStats = player.Stats()
	report.EnemyStats = b.enemy.Stats()

	if !b.settle(player) {
		b.phase = PhaseContinuing
	}
	report.Outcome = b.phase

	span.SetAttributes(
		attribute.Int("round", b.round),
		attribute.String("player", player.Name),
		attribute.Int("player_damage_dealt", report.PlayerAttack.Damage),
		attribute.Int("enemy_damage_dealt", report.EnemyAttack.Damage),
		attribute.Int("player_hp", player.Health),
		attribute.Int("enemy_hp", b.enemy.Health),
		attribute.String("outcome", b.phase.String()),
	)

	return report, nil
}

// settle moves the battle to a fainted phase when either side is down,
// checking the player first, and reports whether it did.
func (b *Battle) settle(player *entity.Creature) bool {
	switch {
	case !player.IsAlive():
		b.phase = PhasePlayerFainted
		b.winner, b.loser = b.enemy, player
	case !b.enemy.IsAlive():
		b.phase = PhaseEnemyFainted
		b.winner, b.loser = player, b.enemy
	default:
		return false
	}
	return true
}

// Continue keeps the current creature in and moves to the next round.
func (b *Battle) Continue() error {
	if b.phase != PhaseContinuing {
		return fmt.Errorf("%w: cannot continue in %s", ErrWrongPhase, b.phase)
	}
	b.phase = PhaseInRound
	b.settle(b.trainer.Active())
	return nil
}

// Switch makes the roster creature at index active and moves to the next
// round. On an invalid index the battle stays in PhaseContinuing. Switching
// to a fainted creature ends the battle with no round fought.
func (b *Battle) Switch(index int) error {
	if b.phase != PhaseContinuing {
		return fmt.Errorf("%w: cannot switch in %s", ErrWrongPhase, b.phase)
	}
	if err := b.trainer.SelectIndex(index); err != nil {
		return err
	}
	b.phase = PhaseInRound
	b.settle(b.trainer.Active())
	return nil
}

// Finish ends a battle in which one side has fainted.
func (b *Battle) Finish(ctx context.Context) error {
	if !b.phase.Fainted() {
		return fmt.Errorf("%w: cannot finish in %s", ErrWrongPhase, b.phase)
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("outcome", b.phase.String()),
		attribute.String("winner", b.winner.Name),
		attribute.Int("rounds", b.round),
	)
	span.End()

	b.phase = PhaseTerminated
	return nil
}
