package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ComponentListModel - Interactive component browsing
// =============================================================================

// ComponentListModel is the bubbletea model for browsing the components of
// a partitioned graph. The left pane lists components; the member pane
// shows the selected component's nodes.
type ComponentListModel struct {
	Components [][]string
	Cursor     int
	Height     int
	Offset     int
}

// NewComponentListModel creates a new component list model.
func NewComponentListModel(components [][]string) ComponentListModel {
	return ComponentListModel{
		Components: components,
		Height:     15,
	}
}

func (m ComponentListModel) Init() tea.Cmd {
	return nil
}

func (m ComponentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ComponentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Components"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Components) {
		end = len(m.Components)
	}

	for i := m.Offset; i < end; i++ {
		members := m.Components[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s[%d] %d members", cursor, i, len(members))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Components) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
		b.WriteString("\n")
		b.WriteString(renderMembers(m.Components[m.Cursor]))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Components))))

	return b.String()
}

// renderMembers formats a component's node IDs, wrapping at a fixed width.
func renderMembers(members []string) string {
	var b strings.Builder
	width := 0
	for i, id := range members {
		if i > 0 {
			b.WriteString(listDimStyle.Render(", "))
			width += 2
		}
		if width+len(id) > 72 {
			b.WriteString("\n")
			width = 0
		}
		b.WriteString(listNormalStyle.Render(id))
		width += len(id)
	}
	return b.String()
}
