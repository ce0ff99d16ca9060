package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
)

// Eligible returns the pool creatures the trainer may fight: not in the
// trainer's roster and not sharing the active creature's type.
// It returns nil if the trainer has no active creature.
func Eligible(pool *entity.Pool, trainer *entity.Trainer) []*entity.Creature {
	active := trainer.Active()
	if active == nil {
		return nil
	}

	var eligible []*entity.Creature
	for _, c := range pool.All() {
		if c.Type == active.Type || trainer.Owns(c.ID) {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

// ChooseOpponent picks a uniformly random eligible opponent.
// It returns nil when no opponent is available.
func ChooseOpponent(ctx context.Context, roller Roller, pool *entity.Pool, trainer *entity.Trainer) *entity.Creature {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "opponent.choose")
	defer span.End()

	eligible := Eligible(pool, trainer)
	span.SetAttributes(attribute.Int("eligible_count", len(eligible)))
	if len(eligible) == 0 {
		return nil
	}

	opponent := eligible[roller.Intn(len(eligible))]
	span.SetAttributes(attribute.String("opponent", opponent.Name))
	return opponent
}
