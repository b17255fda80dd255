package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// maxBoardRows limits the session board to the most recent games.
const maxBoardRows = 5

// sessionBoard builds a table of the games finished in this session,
// most recent first.
func sessionBoard(results []int, best int) table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "", Width: 6},
	}

	rows := make([]table.Row, 0, maxBoardRows)
	for i := len(results) - 1; i >= 0 && len(rows) < maxBoardRows; i-- {
		mark := ""
		if results[i] == best && best > 0 {
			mark = "best"
		}
		rows = append(rows, table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(results[i]), mark})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
