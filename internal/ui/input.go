package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/game"
)

var (
	// ErrInvalidMenuInput is returned for answers outside a menu's options.
	ErrInvalidMenuInput = errors.New("invalid menu input")
	// ErrNotANumber is returned when a creature index is not numeric.
	ErrNotANumber = errors.New("not a number")
)

// normalize trims and case-folds typed input.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseMainChoice parses a main menu answer ("1", "2" or "3").
func ParseMainChoice(s string) (game.MainChoice, error) {
	switch normalize(s) {
	case "1":
		return game.ChooseMain, nil
	case "2":
		return game.InitiateFight, nil
	case "3":
		return game.Quit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMenuInput, s)
	}
}

// ParseEndgameChoice parses an end-of-battle answer ("1" or "2").
func ParseEndgameChoice(s string) (game.EndgameChoice, error) {
	switch normalize(s) {
	case "1":
		return game.Restart, nil
	case "2":
		return game.QuitToMenu, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMenuInput, s)
	}
}

// ParseCreatureIndex parses a 1-based roster number into an index in [0, count).
func ParseCreatureIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w %q", entity.ErrInvalidSelection, ErrNotANumber, s)
	}
	index := n - 1
	if index < 0 || index >= count {
		return 0, fmt.Errorf("%w: %d not in 1..%d", entity.ErrInvalidSelection, n, count)
	}
	return index, nil
}

// ParseYesNo parses a switch answer. Empty input counts as no.
func ParseYesNo(s string) game.YesNo {
	switch normalize(s) {
	case "yes":
		return game.Yes
	case "no", "":
		return game.No
	default:
		return game.Invalid
	}
}

// mainMenuText and endgameMenuText render the menu options.
func mainMenuText() []string {
	return []string{
		"",
		"Main Menu:",
		fmt.Sprintf("1. %s", game.ChooseMain),
		fmt.Sprintf("2. %s", game.InitiateFight),
		fmt.Sprintf("3. %s", game.Quit),
	}
}

func endgameMenuText() []string {
	return []string{
		"",
		"End Game Menu:",
		fmt.Sprintf("1. %s", game.Restart),
		fmt.Sprintf("2. %s", game.QuitToMenu),
	}
}
