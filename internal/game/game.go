package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
)

// Game holds the entire game state.
type Game struct {
	menu    Menu
	pool    *entity.Pool
	trainer *entity.Trainer
	rng     combat.Roller
	logger  *log.Logger
}

// New creates a game from configuration, loading creature data from
// cfg.DataFile or the embedded defaults.
func New(cfg Config, menu Menu) (*Game, error) {
	data, err := LoadData(cfg)
	if err != nil {
		return nil, err
	}
	return NewFromData(cfg, data, menu)
}

// LoadData loads creature data from cfg.DataFile, or the embedded defaults
// when no file is configured.
func LoadData(cfg Config) (*gamedata.GameData, error) {
	if cfg.DataFile != "" {
		return gamedata.LoadGameDataFile(cfg.DataFile)
	}
	return gamedata.LoadGameData()
}

// NewFromData creates a game over already loaded creature data.
func NewFromData(cfg Config, data *gamedata.GameData, menu Menu) (*Game, error) {
	pool, trainer, err := NewWorld(data, cfg.TrainerName)
	if err != nil {
		return nil, err
	}
	return NewWithWorld(menu, pool, trainer, cfg.NewRand()), nil
}

// NewWithWorld creates a game over an existing pool and trainer.
func NewWithWorld(menu Menu, pool *entity.Pool, trainer *entity.Trainer, rng combat.Roller) *Game {
	return &Game{
		menu:    menu,
		pool:    pool,
		trainer: trainer,
		rng:     rng,
		logger:  log.New(io.Discard, "", 0),
	}
}

// NewWorld builds the creature pool and the trainer from data definitions.
// A non-empty trainerName overrides the name in the data.
func NewWorld(data *gamedata.GameData, trainerName string) (*entity.Pool, *entity.Trainer, error) {
	pool := entity.NewPool()
	ids := make(map[string]entity.ID, len(data.Creatures))

	for _, def := range data.Creatures {
		typ, err := entity.ParseType(def.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("creature %q: %w", def.ID, err)
		}
		c, err := entity.NewCreature(def.Name, typ, def.MaxHealth, def.AttackPower)
		if err != nil {
			return nil, nil, err
		}
		id, err := pool.Add(c)
		if err != nil {
			return nil, nil, err
		}
		ids[def.ID] = id
	}

	roster := make([]entity.ID, 0, len(data.Trainer.Roster))
	for _, id := range data.Trainer.Roster {
		def := data.CreatureByID(id)
		if def == nil {
			return nil, nil, fmt.Errorf("trainer roster: %w %q", entity.ErrUnknownCreature, id)
		}
		roster = append(roster, ids[def.ID])
	}

	name := data.Trainer.Name
	if trainerName != "" {
		name = trainerName
	}
	trainer, err := entity.NewTrainer(name, pool, roster...)
	if err != nil {
		return nil, nil, err
	}
	return pool, trainer, nil
}

// SetLogger directs battle log lines to l.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Pool returns the creature pool.
func (g *Game) Pool() *entity.Pool { return g.pool }

// Trainer returns the player's trainer.
func (g *Game) Trainer() *entity.Trainer { return g.trainer }

// Run executes the main menu loop until the player quits or input closes.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("pool_size", g.pool.Count()),
		attribute.Int("roster_size", g.trainer.Count()),
		attribute.String("trainer", g.trainer.Name),
	)
	initSpan.End()

	for {
		choice, err := g.menu.PromptMainChoice()
		if err != nil {
			return quitOnClosed(err)
		}

		switch choice {
		case ChooseMain:
			err = g.ChooseMain()
		case InitiateFight:
			err = g.Fight(ctx)
		case Quit:
			g.menu.Display("Exiting game...")
			return nil
		}
		if err != nil {
			return quitOnClosed(err)
		}
	}
}

func quitOnClosed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

// ChooseMain asks the player for their main creature.
func (g *Game) ChooseMain() error {
	g.menu.Display(fmt.Sprintf("%s, choose your main creature:", g.trainer.Name))
	index, err := g.promptRosterIndex()
	if err != nil {
		return err
	}
	if err := g.trainer.SelectIndex(index); err != nil {
		g.menu.Display("Invalid creature.")
		return nil
	}
	g.menu.Display(fmt.Sprintf("%s chose %s as the main creature.", g.trainer.Name, g.trainer.Active().Name))
	return nil
}

// promptRosterIndex lists the roster and reads a roster index.
func (g *Game) promptRosterIndex() (int, error) {
	for i, line := range g.trainer.ListOwned() {
		g.menu.Display(fmt.Sprintf("%d. %s", i+1, line))
	}
	return g.menu.PromptCreatureIndex(g.trainer.Count())
}

// Fight runs a battle against a random opponent. Missing preconditions are
// reported to the player and are not errors.
func (g *Game) Fight(ctx context.Context) error {
	b, err := StartBattle(ctx, g.pool, g.trainer, g.rng)
	switch {
	case errors.Is(err, ErrNoActiveCreature):
		g.menu.Display("You need to choose your main creature first.")
		return nil
	case errors.Is(err, ErrNoOpponentAvailable):
		g.menu.Display("No available enemy creature.")
		return nil
	case err != nil:
		return err
	}

	g.menu.Display(fmt.Sprintf("Opponent chose %s as their creature.", b.Enemy().Name))
	g.menu.Display("Initiating fight...")
	g.menu.Display(fmt.Sprintf("%s's main creature (%s) is battling %s.", g.trainer.Name, b.Player().Name, b.Enemy().Name))
	g.logger.Printf("battle start: %s vs %s", b.Player().Name, b.Enemy().Name)

	for b.Phase() != PhaseTerminated {
		switch b.Phase() {
		case PhaseInRound:
			report, err := b.ResolveRound(ctx)
			if err != nil {
				return err
			}
			g.menu.Display(report.PlayerAttack.Message)
			g.menu.Display(report.EnemyAttack.Message)
			g.menu.Display(report.PlayerStats)
			g.menu.Display(report.EnemyStats)
		case PhaseContinuing:
			if err := g.decideSwitch(b); err != nil {
				return err
			}
		case PhasePlayerFainted, PhaseEnemyFainted:
			g.menu.Display(fmt.Sprintf("%s fainted!", b.Loser().Name))
			if err := b.Finish(ctx); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected %s", ErrWrongPhase, b.Phase())
		}
	}

	return g.endBattle(b)
}

// decideSwitch offers the mid-battle switch. Invalid answers leave the
// battle in PhaseContinuing so the question is asked again.
func (g *Game) decideSwitch(b *Battle) error {
	g.menu.Display("Do you want to switch your creature? (yes/no):")
	answer, err := g.menu.PromptYesNo()
	if err != nil {
		return err
	}

	switch answer {
	case Yes:
		g.menu.Display(fmt.Sprintf("%s, switch to your active creature:", g.trainer.Name))
		index, err := g.promptRosterIndex()
		if err != nil {
			return err
		}
		if err := b.Switch(index); err != nil {
			g.menu.Display("Invalid creature.")
			return nil
		}
		g.menu.Display(fmt.Sprintf("%s switches to %s.", g.trainer.Name, b.Player().Name))
		return nil
	case No:
		return b.Continue()
	default:
		g.menu.Display("Invalid choice. Please choose 'yes' or 'no'.")
		return nil
	}
}

// endBattle reports the winner and handles the restart decision.
func (g *Game) endBattle(b *Battle) error {
	g.menu.Display("Battle is over!")
	g.menu.Display(fmt.Sprintf("%s wins!", b.Winner().Name))
	g.logger.Printf("battle end: %s beat %s after %d rounds", b.Winner().Name, b.Loser().Name, b.Round())

	choice, err := g.menu.PromptEndgameChoice()
	if err != nil {
		return err
	}
	switch choice {
	case Restart:
		g.Restart()
		g.menu.Display("Game restarted.")
	case QuitToMenu:
		g.menu.Display("Returning to main menu...")
	}
	return nil
}

// Restart heals every creature in the pool and clears the active creature.
func (g *Game) Restart() {
	g.pool.RestoreAll()
	g.trainer.ClearActive()
	g.logger.Printf("game restarted")
}
