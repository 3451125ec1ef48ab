package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the first page of a signed-out session.
type WelcomeModel struct {
	items  []string
	idx    int
	status string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items: []string{"Log in", "Register", "Quit"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(notice); ok {
		m.status = n.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		switch m.idx {
		case 0:
			return m, navigate(pageLogin, nil)
		case 1:
			return m, navigate(pageRegister, nil)
		default:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(noticeStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(renderMenuTable(m.items, m.idx))

	return renderPage("GO ZK VAULT", b.String(), "enter: select │ ↑/↓: move │ v: version")
}
