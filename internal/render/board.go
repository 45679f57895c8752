// Package render draws the tracked board for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leva-autoplay/internal/board"
)

// Cols is the number of cells per row on the 4x4 board.
const Cols = 4

// cellWidth is the printable width of one cell, label included.
const cellWidth = 10

// Theme contains the cell styles.
type Theme struct {
	Hidden  lipgloss.Style // Face unknown
	Known   lipgloss.Style // Face seen, not matched
	Pending lipgloss.Style // Waiting for its partner
	Matched lipgloss.Style
	Status  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().Width(cellWidth)
	return Theme{
		Hidden:  cell.Foreground(lipgloss.Color("240")),                    // Dim gray
		Known:   cell.Foreground(lipgloss.Color("252")),                    // Light gray
		Pending: cell.Foreground(lipgloss.Color("226")).Bold(true),         // Bright yellow
		Matched: cell.Foreground(lipgloss.Color("46")).Strikethrough(true), // Lime green
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Board renders the tracker as four rows of four cells followed by a status
// line.
func Board(t *board.Tracker, theme Theme) string {
	pending, hasPending := t.Pending()

	rows := make([]string, 0, board.Size/Cols+1)
	for r := 0; r < board.Size/Cols; r++ {
		cells := make([]string, 0, Cols)
		for c := 0; c < Cols; c++ {
			i := r*Cols + c
			cells = append(cells, cellStyle(t, i, pending, hasPending, theme).Render(label(i, t.Card(i))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, theme.Status.Render(Status(t)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Status summarises progress in one line.
func Status(t *board.Tracker) string {
	s := fmt.Sprintf("matched %d/%d", t.MatchedCount(), board.Size)
	if p, ok := t.Pending(); ok {
		s += fmt.Sprintf(", pending %s@%d", p.Card, p.Index)
	}
	return s
}

func cellStyle(t *board.Tracker, i int, pending board.Reveal, hasPending bool, theme Theme) lipgloss.Style {
	switch {
	case t.IsMatched(i):
		return theme.Matched
	case hasPending && pending.Index == i:
		return theme.Pending
	case t.Card(i) != "":
		return theme.Known
	default:
		return theme.Hidden
	}
}

// label formats a cell as "NN:card", truncated to fit the cell.
func label(i int, card string) string {
	if card == "" {
		card = "?"
	}
	s := fmt.Sprintf("%02d:%s", i, card)
	if len(s) > cellWidth-1 {
		s = s[:cellWidth-2] + "~"
	}
	return s
}

// Plain renders the board without styling, one row per line.
func Plain(t *board.Tracker) string {
	var b strings.Builder
	for r := 0; r < board.Size/Cols; r++ {
		for c := 0; c < Cols; c++ {
			i := r*Cols + c
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmt.Sprintf("%-*s", cellWidth-1, label(i, t.Card(i))))
		}
		b.WriteByte('\n')
	}
	b.WriteString(Status(t))
	return b.String()
}
