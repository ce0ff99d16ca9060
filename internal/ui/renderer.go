package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws the message log and the input line.
type Renderer struct {
	screen  *Screen
	palette map[string]tcell.Color // Type name -> color
}

// NewRenderer creates a renderer for the given screen. Words matching a
// palette key (e.g. a type name) are drawn in that color.
func NewRenderer(screen *Screen, palette map[string]tcell.Color) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the newest log lines above a prompt on the bottom row.
func (r *Renderer) Render(lines []string, prompt string) {
	r.screen.Clear()
	_, height := r.screen.Size()

	rows := height - 1
	if rows < 0 {
		rows = 0
	}
	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for y, line := range lines[start:] {
		r.drawLine(0, y, line, lineStyle(line))
	}

	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := r.drawLine(0, height-1, prompt, promptStyle)
	r.screen.ShowCursor(x, height-1)

	r.screen.Show()
}

// drawLine draws text word by word and returns the column after the last cell.
func (r *Renderer) drawLine(x, y int, line string, base tcell.Style) int {
	for i, word := range strings.Split(line, " ") {
		if i > 0 {
			r.screen.SetContent(x, y, ' ', base)
			x++
		}
		style := r.wordStyle(word, base)
		for _, ch := range word {
			r.screen.SetContent(x, y, ch, style)
			x++
		}
	}
	return x
}

// wordStyle highlights words naming a palette entry, ignoring punctuation.
func (r *Renderer) wordStyle(word string, base tcell.Style) tcell.Style {
	key := strings.Trim(word, "(),.:;!?")
	if color, ok := r.palette[key]; ok {
		return base.Foreground(color).Bold(true)
	}
	return base
}

// lineStyle picks a base style from the kind of message.
func lineStyle(line string) tcell.Style {
	switch {
	case strings.HasPrefix(line, "Invalid"), strings.HasSuffix(line, "fainted!"):
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case strings.HasSuffix(line, "wins!"):
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case strings.HasSuffix(line, "Menu:"):
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}
