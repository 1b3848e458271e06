package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Navigator is a bubbletea model for picking one service from a list.
type Navigator struct {
	services  []string
	cursor    int
	confirmed bool
}

// NewNavigator creates a navigator over the given service names.
func NewNavigator(services []string) *Navigator {
	return &Navigator{services: services}
}

func (n *Navigator) moveUp() {
	if n.cursor > 0 {
		n.cursor--
	}
}

func (n *Navigator) moveDown() {
	if n.cursor < len(n.services)-1 {
		n.cursor++
	}
}

// Choice returns the service under the cursor and whether the user
// confirmed it with Enter.
func (n *Navigator) Choice() (string, bool) {
	if !n.confirmed || len(n.services) == 0 {
		return "", false
	}
	return n.services[n.cursor], true
}

func (n *Navigator) Init() tea.Cmd {
	return nil
}

func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return n, tea.Quit
		case "enter":
			n.confirmed = true
			return n, tea.Quit
		case "up", "k":
			n.moveUp()
		case "down", "j":
			n.moveDown()
		}
	}
	return n, nil
}

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unselStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (n *Navigator) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", headerStyle.Render(
		fmt.Sprintf("svcreport: pick a service (%d found)", len(n.services))))

	for i, svc := range n.services {
		cursor := "  "
		style := unselStyle
		if i == n.cursor {
			cursor = "> "
			style = selectedStyle
		}

		if i == n.cursor {
			fmt.Fprintf(&b, "%s%s\n", cursorStyle.Render(cursor), style.Render(svc))
		} else {
			fmt.Fprintf(&b, "%s%s\n", cursor, style.Render(svc))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", helpStyle.Render(
		"up/down navigate  ENTER open graph  q quit"))

	return b.String()
}

// Run launches the interactive navigator and returns the chosen service.
// Returns "", false if the user quit without confirming.
func Run(services []string) (string, bool) {
	if len(services) == 0 {
		return "", false
	}
	n := NewNavigator(services)
	finalModel, err := tea.NewProgram(n).Run()
	if err != nil {
		return "", false
	}
	nav := finalModel.(*Navigator)
	return nav.Choice()
}
