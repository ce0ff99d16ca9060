package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/creaturebattle/internal/game"
)

// maxLogLines bounds the message history kept for redraws.
const maxLogLines = 500

// TerminalMenu is a full-screen menu: a scrolling message log with an input
// line at the bottom.
type TerminalMenu struct {
	screen   *Screen
	renderer *Renderer
	lines    []string
}

// NewTerminalMenu creates a menu drawing on screen with the given type palette.
func NewTerminalMenu(screen *Screen, palette map[string]tcell.Color) *TerminalMenu {
	return &TerminalMenu{
		screen:   screen,
		renderer: NewRenderer(screen, palette),
	}
}

// Display appends text to the message log.
func (m *TerminalMenu) Display(text string) {
	m.lines = append(m.lines, strings.Split(text, "\n")...)
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}
}

// readLine edits a line until Enter. Escape and Ctrl-C close input.
func (m *TerminalMenu) readLine(prompt string) (string, error) {
	var buf []rune
	for {
		m.renderer.Render(m.lines, prompt+string(buf))

		switch ev := m.screen.PollEvent().(type) {
		case nil:
			return "", game.ErrInputClosed
		case *tcell.EventResize:
			m.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", game.ErrInputClosed
			case tcell.KeyEnter:
				line := string(buf)
				m.Display(prompt + line)
				return line, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				buf = append(buf, ev.Rune())
			}
		}
	}
}

// PromptMainChoice shows the main menu and reads a choice.
func (m *TerminalMenu) PromptMainChoice() (game.MainChoice, error) {
	return promptMainChoice(m)
}

// PromptCreatureIndex reads a roster index in [0, count).
func (m *TerminalMenu) PromptCreatureIndex(count int) (int, error) {
	return promptCreatureIndex(m, count)
}

// PromptYesNo reads a yes/no answer.
func (m *TerminalMenu) PromptYesNo() (game.YesNo, error) {
	return promptYesNo(m)
}

// PromptEndgameChoice shows the end game menu and reads a choice.
func (m *TerminalMenu) PromptEndgameChoice() (game.EndgameChoice, error) {
	return promptEndgameChoice(m)
}

var _ game.Menu = (*TerminalMenu)(nil)
