package game

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// scriptedMenu answers prompts from queues and records displayed text.
// An empty queue reports ErrInputClosed.
type scriptedMenu struct {
	main     []MainChoice
	indexes  []int
	yesNo    []YesNo
	endgame  []EndgameChoice
	lines    []string
	yesNoAsk int
}

func (m *scriptedMenu) PromptMainChoice() (MainChoice, error) {
	if len(m.main) == 0 {
		return 0, ErrInputClosed
	}
	c := m.main[0]
	m.main = m.main[1:]
	return c, nil
}

func (m *scriptedMenu) PromptCreatureIndex(count int) (int, error) {
	if len(m.indexes) == 0 {
		return 0, ErrInputClosed
	}
	i := m.indexes[0]
	m.indexes = m.indexes[1:]
	return i, nil
}

func (m *scriptedMenu) PromptYesNo() (YesNo, error) {
	m.yesNoAsk++
	if len(m.yesNo) == 0 {
		return 0, ErrInputClosed
	}
	a := m.yesNo[0]
	m.yesNo = m.yesNo[1:]
	return a, nil
}

func (m *scriptedMenu) PromptEndgameChoice() (EndgameChoice, error) {
	if len(m.endgame) == 0 {
		return 0, ErrInputClosed
	}
	c := m.endgame[0]
	m.endgame = m.endgame[1:]
	return c, nil
}

func (m *scriptedMenu) Display(text string) {
	m.lines = append(m.lines, text)
}

func (m *scriptedMenu) count(substr string) int {
	n := 0
	for _, l := range m.lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

func (m *scriptedMenu) has(line string) bool {
	for _, l := range m.lines {
		if l == line {
			return true
		}
	}
	return false
}

func TestRunQuit(t *testing.T) {
	pool, trainer, _ := newWorld(t, creatureSpec{"Charmander", entity.TypeFire, 50, 10, true})
	menu := &scriptedMenu{main: []MainChoice{Quit}}
	g := NewWithWorld(menu, pool, trainer, &scriptedRoller{t: t})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !menu.has("Exiting game...") {
		t.Errorf("expected exit message, got %v", menu.lines)
	}
}

func TestRunInputClosedEndsCleanly(t *testing.T) {
	pool, trainer, _ := newWorld(t, creatureSpec{"Charmander", entity.TypeFire, 50, 10, true})
	menu := &scriptedMenu{main: []MainChoice{ChooseMain}}
	g := NewWithWorld(menu, pool, trainer, &scriptedRoller{t: t})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v, want nil on closed input", err)
	}
}

func TestFightWithoutMainCreature(t *testing.T) {
	pool, trainer, _ := newWorld(t,
		creatureSpec{"Charmander", entity.TypeFire, 50, 10, true},
		creatureSpec{"Rattata", entity.TypeNormal, 40, 7, false},
	)
	menu := &scriptedMenu{main: []MainChoice{InitiateFight, Quit}}
	g := NewWithWorld(menu, pool, trainer, &scriptedRoller{t: t})

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !menu.has("You need to choose your main creature first.") {
		t.Errorf("expected no-active message, got %v", menu.lines)
	}
}

func TestFightWithoutOpponent(t *testing.T) {
	pool, trainer, _ := newWorld(t,
		creatureSpec{"Charmander", entity.TypeFire, 50, 10, true},
		creatureSpec{"Vulpix", entity.TypeFire, 38, 9, false},
	)
	menu := &scriptedMenu{main: []MainChoice{ChooseMain, InitiateFight, Quit}, indexes: []int{0}}
	g := NewWithWorld(menu, pool, trainer, &scriptedRoller{t: t})

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !menu.has("No available enemy creature.") {
		t.Errorf("expected no-opponent message, got %v", menu.lines)
	}
	if menu.count("attacks") != 0 {
		t.Error("no attacks should happen without an opponent")
	}
}

func TestFullBattleWithInvalidAnswerAndRestart(t *testing.T) {
	pool, trainer, cs := newWorld(t,
		creatureSpec{"Charmander", entity.TypeFire, 50, 10, true},
		creatureSpec{"Rattata", entity.TypeNormal, 15, 7, false},
	)
	charmander, rattata := cs[0], cs[1]

	menu := &scriptedMenu{
		main:    []MainChoice{ChooseMain, InitiateFight, Quit},
		indexes: []int{0},
		yesNo:   []YesNo{Invalid, No},
		endgame: []EndgameChoice{Restart},
	}
	// Round 1: 5 to Rattata (10 left), 2*0.5 = 1 to Charmander.
	// Round 2: 10 to Rattata (fainted), 1 to Charmander.
	roller := script(t, 0, 5, 2, 10, 2)
	g := NewWithWorld(menu, pool, trainer, roller)

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := menu.count(" attacks "); got != 4 {
		t.Errorf("expected 4 attack lines (2 rounds), got %d: %v", got, menu.lines)
	}
	if menu.yesNoAsk != 2 {
		t.Errorf("switch question asked %d times, want 2", menu.yesNoAsk)
	}
	for _, want := range []string{
		"trainer1 chose Charmander as the main creature.",
		"Opponent chose Rattata as their creature.",
		"Charmander attacks Rattata and deals 5 damage.",
		"Rattata attacks Charmander and deals 1 damage.",
		"Charmander Health: 49/50",
		"Rattata Health: 10/15",
		"Invalid choice. Please choose 'yes' or 'no'.",
		"Rattata fainted!",
		"Charmander wins!",
		"Game restarted.",
	} {
		if !menu.has(want) {
			t.Errorf("missing line %q in %v", want, menu.lines)
		}
	}

	// Restart restored health and cleared the active creature
	if charmander.Health != charmander.MaxHealth || rattata.Health != rattata.MaxHealth {
		t.Errorf("restart should restore health, got %d and %d", charmander.Health, rattata.Health)
	}
	if trainer.HasActive() {
		t.Error("restart should clear the active creature")
	}
	if len(roller.values) != 0 {
		t.Errorf("%d rolls left unused", len(roller.values))
	}
}

func TestBattleSwitchAndQuitKeepsState(t *testing.T) {
	pool, trainer, cs := newWorld(t,
		creatureSpec{"Charmander", entity.TypeFire, 50, 10, true},
		creatureSpec{"Squirtle", entity.TypeWater, 55, 9, true},
		creatureSpec{"Rattata", entity.TypeNormal, 12, 7, false},
	)
	squirtle, rattata := cs[1], cs[2]

	menu := &scriptedMenu{
		main:    []MainChoice{ChooseMain, InitiateFight, Quit},
		indexes: []int{0, 1},
		yesNo:   []YesNo{Yes, No},
		endgame: []EndgameChoice{QuitToMenu},
	}
	// Round 1: Charmander 2 to Rattata (10 left), Rattata 4*0.5 = 2.
	// Switch to Squirtle. Round 2: Squirtle 9 (1 left), 2 back.
	// Round 3: Squirtle finishes Rattata, 2 back.
	roller := script(t, 0, 2, 4, 9, 4, 9, 4)
	g := NewWithWorld(menu, pool, trainer, roller)

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !menu.has("trainer1 switches to Squirtle.") {
		t.Errorf("expected switch message, got %v", menu.lines)
	}
	if !menu.has("Squirtle wins!") {
		t.Errorf("expected Squirtle to win, got %v", menu.lines)
	}
	if !menu.has("Returning to main menu...") {
		t.Error("expected return-to-menu message")
	}
	// Quit keeps battle damage and the active creature
	if squirtle.Health != 55-2-2 {
		t.Errorf("Squirtle health = %d, want 51", squirtle.Health)
	}
	if rattata.IsAlive() {
		t.Error("Rattata should stay fainted after quitting to menu")
	}
	if trainer.Active() != squirtle {
		t.Error("active creature should stay Squirtle")
	}
}

func TestPlayerLoses(t *testing.T) {
	pool, trainer, _ := newWorld(t,
		creatureSpec{"Rattata", entity.TypeNormal, 4, 7, true},
		creatureSpec{"Pikachu", entity.TypeElectric, 45, 12, false},
	)
	menu := &scriptedMenu{
		main:    []MainChoice{ChooseMain, InitiateFight, Quit},
		indexes: []int{0},
		endgame: []EndgameChoice{QuitToMenu},
	}
	g := NewWithWorld(menu, pool, trainer, script(t, 0, 1, 12))
	var logs bytes.Buffer
	g.SetLogger(log.New(&logs, "", 0))

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "battle end: Pikachu beat Rattata after 1 rounds") {
		t.Errorf("unexpected battle log %q", logs.String())
	}
	if !menu.has("Rattata fainted!") || !menu.has("Pikachu wins!") {
		t.Errorf("expected Pikachu to win, got %v", menu.lines)
	}
	if menu.yesNoAsk != 0 {
		t.Error("no switch question after a faint")
	}
}

func TestFightAgainAfterLossWithoutRestart(t *testing.T) {
	pool, trainer, cs := newWorld(t,
		creatureSpec{"Rattata", entity.TypeNormal, 4, 7, true},
		creatureSpec{"Pikachu", entity.TypeElectric, 45, 12, false},
	)
	pikachu := cs[1]
	menu := &scriptedMenu{
		main:    []MainChoice{ChooseMain, InitiateFight, InitiateFight, Quit},
		indexes: []int{0},
		endgame: []EndgameChoice{QuitToMenu, QuitToMenu},
	}
	// Second fight only picks the opponent: a fainted Rattata never attacks.
	roller := script(t, 0, 1, 12)
	roller.values = append(roller.values, 0)
	g := NewWithWorld(menu, pool, trainer, roller)

	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := menu.count("Rattata fainted!"); got != 2 {
		t.Errorf("faint line shown %d times, want 2", got)
	}
	if got := menu.count("Rattata attacks"); got != 1 {
		t.Errorf("Rattata attacked %d times, want 1", got)
	}
	if pikachu.Health != 43 {
		t.Errorf("Pikachu health = %d, want 43", pikachu.Health)
	}
	if len(roller.values) != 0 {
		t.Errorf("%d rolls left unused", len(roller.values))
	}
}

func TestNewWorldFromEmbeddedData(t *testing.T) {
	data, err := gamedata.LoadGameData()
	if err != nil {
		t.Fatal(err)
	}
	pool, trainer, err := NewWorld(data, "")
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if pool.Count() != 5 {
		t.Errorf("pool size = %d, want 5", pool.Count())
	}
	if trainer.Name != "trainer1" || trainer.Count() != 3 {
		t.Errorf("trainer = %s with %d creatures", trainer.Name, trainer.Count())
	}
	names := []string{}
	for _, c := range trainer.Owned() {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "Charmander,Bulbasaur,Squirtle" {
		t.Errorf("roster = %v", names)
	}

	_, renamed, err := NewWorld(data, "Red")
	if err != nil {
		t.Fatal(err)
	}
	if renamed.Name != "Red" {
		t.Errorf("trainer name override = %q, want Red", renamed.Name)
	}
}

func TestNewWorldRejectsUnknownType(t *testing.T) {
	data := &gamedata.GameData{
		Creatures: []gamedata.CreatureDef{{ID: "mew", Name: "Mew", Type: "Psychic", MaxHealth: 10, AttackPower: 3}},
		Trainer:   gamedata.TrainerDef{Name: "t", Roster: []string{"mew"}},
	}
	if _, _, err := NewWorld(data, ""); err == nil {
		t.Error("expected error for unknown type")
	}

	data.Creatures[0].Type = "Normal"
	data.Trainer.Roster = []string{"missing"}
	if _, _, err := NewWorld(data, ""); !errors.Is(err, entity.ErrUnknownCreature) {
		t.Errorf("error = %v, want ErrUnknownCreature", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	menu := &scriptedMenu{}
	g, err := New(Config{Seed: 7}, menu)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Pool().Count() != 5 || g.Trainer().Count() != 3 {
		t.Error("New should load the embedded data")
	}

	if _, err := New(Config{DataFile: "does-not-exist.yaml"}, menu); err == nil {
		t.Error("expected error for missing data file")
	}
}
