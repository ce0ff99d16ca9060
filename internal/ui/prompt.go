package ui

import (
	"errors"

	"github.com/samdwyer/creaturebattle/internal/game"
)

// lineIO is a text surface that can show lines and read one typed line.
type lineIO interface {
	Display(text string)
	readLine(prompt string) (string, error)
}

func displayAll(l lineIO, lines []string) {
	for _, line := range lines {
		l.Display(line)
	}
}

func promptMainChoice(l lineIO) (game.MainChoice, error) {
	displayAll(l, mainMenuText())
	for {
		s, err := l.readLine("Enter the number of your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := ParseMainChoice(s)
		if err == nil {
			return choice, nil
		}
		l.Display("Invalid choice. Please choose again.")
	}
}

func promptCreatureIndex(l lineIO, count int) (int, error) {
	for {
		s, err := l.readLine("Enter the number of your choice: ")
		if err != nil {
			return 0, err
		}
		index, err := ParseCreatureIndex(s, count)
		switch {
		case err == nil:
			return index, nil
		case errors.Is(err, ErrNotANumber):
			l.Display("Invalid input. Please enter a number.")
		default:
			l.Display("Invalid creature choice. Please try again.")
		}
	}
}

func promptYesNo(l lineIO) (game.YesNo, error) {
	s, err := l.readLine("> ")
	if err != nil {
		return game.Invalid, err
	}
	return ParseYesNo(s), nil
}

func promptEndgameChoice(l lineIO) (game.EndgameChoice, error) {
	displayAll(l, endgameMenuText())
	for {
		s, err := l.readLine("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := ParseEndgameChoice(s)
		if err == nil {
			return choice, nil
		}
		l.Display("Invalid choice. Please choose again.")
	}
}
