package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samdwyer/creaturebattle/internal/game"
)

// ConsoleMenu is a line-oriented menu over plain reader and writer streams.
type ConsoleMenu struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleMenu creates a console menu reading answers from in and writing to out.
func NewConsoleMenu(in io.Reader, out io.Writer) *ConsoleMenu {
	return &ConsoleMenu{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Display writes one line of text.
func (m *ConsoleMenu) Display(text string) {
	fmt.Fprintln(m.out, text)
}

// readLine prints the prompt and reads the next line.
// End of input is reported as game.ErrInputClosed.
func (m *ConsoleMenu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", game.ErrInputClosed
	}
	return m.in.Text(), nil
}

// PromptMainChoice shows the main menu and reads a choice.
func (m *ConsoleMenu) PromptMainChoice() (game.MainChoice, error) {
	return promptMainChoice(m)
}

// PromptCreatureIndex reads a roster index in [0, count).
func (m *ConsoleMenu) PromptCreatureIndex(count int) (int, error) {
	return promptCreatureIndex(m, count)
}

// PromptYesNo reads a yes/no answer.
func (m *ConsoleMenu) PromptYesNo() (game.YesNo, error) {
	return promptYesNo(m)
}

// PromptEndgameChoice shows the end game menu and reads a choice.
func (m *ConsoleMenu) PromptEndgameChoice() (game.EndgameChoice, error) {
	return promptEndgameChoice(m)
}

var _ game.Menu = (*ConsoleMenu)(nil)
