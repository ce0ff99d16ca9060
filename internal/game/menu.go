package game

import "errors"

// ErrInputClosed is returned by a Menu when no more input can be read.
// Run treats it as a request to quit.
var ErrInputClosed = errors.New("input closed")

// MainChoice is a main menu option.
type MainChoice int

const (
	ChooseMain MainChoice = iota + 1
	InitiateFight
	Quit
)

// String returns the menu label.
func (c MainChoice) String() string {
	switch c {
	case ChooseMain:
		return "Choose Main Creature"
	case InitiateFight:
		return "Initiate Fight"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// YesNo is the answer to a yes/no question.
type YesNo int

const (
	Invalid YesNo = iota
	Yes
	No
)

// EndgameChoice is an end-of-battle option.
type EndgameChoice int

const (
	Restart EndgameChoice = iota + 1
	QuitToMenu
)

// String returns the menu label.
func (c EndgameChoice) String() string {
	switch c {
	case Restart:
		return "Restart"
	case QuitToMenu:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Menu supplies validated player choices and renders text.
// Prompts block until a valid answer is read; they only fail with
// ErrInputClosed.
type Menu interface {
	PromptMainChoice() (MainChoice, error)
	// PromptCreatureIndex returns a roster index in [0, count).
	PromptCreatureIndex(count int) (int, error)
	PromptYesNo() (YesNo, error)
	PromptEndgameChoice() (EndgameChoice, error)
	Display(text string)
}
