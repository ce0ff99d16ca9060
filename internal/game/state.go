// Package game provides the battle engine, the main menu loop and game setup.
package game

// Phase represents the current phase of a battle.
type Phase int

const (
	// PhaseAwaitingOpponent - battle created, no opponent chosen yet
	PhaseAwaitingOpponent Phase = iota
	// PhaseInRound - ready to exchange attacks
	PhaseInRound
	// PhaseRoundResolved - both attacks done, outcome not yet evaluated
	PhaseRoundResolved
	// PhaseContinuing - both creatures standing, waiting for the switch decision
	PhaseContinuing
	// PhasePlayerFainted - the player's active creature fainted
	PhasePlayerFainted
	// PhaseEnemyFainted - the opponent fainted
	PhaseEnemyFainted
	// PhaseTerminated - battle over, winner reported
	PhaseTerminated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingOpponent:
		return "awaiting_opponent"
	case PhaseInRound:
		return "in_round"
	case PhaseRoundResolved:
		return "round_resolved"
	case PhaseContinuing:
		return "continuing"
	case PhasePlayerFainted:
		return "player_fainted"
	case PhaseEnemyFainted:
		return "enemy_fainted"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Fainted reports whether one side has fainted and the battle awaits Finish.
func (p Phase) Fainted() bool {
	return p == PhasePlayerFainted || p == PhaseEnemyFainted
}
