package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuAction int

const (
	actionSetupRecovery menuAction = iota
	actionRestore
	actionChangePassword
	actionRemoveRecovery
	actionLogout
	actionQuit
)

type menuItem struct {
	label  string
	action menuAction
}

// MenuModel is the main menu of a signed-in session. It shows a banner
// while the account has no recovery phrase.
type MenuModel struct {
	ctx      context.Context
	auth     service.ClientAuthService
	recovery service.ClientRecoveryService

	login       string
	hasRecovery bool
	loaded      bool
	busy        bool

	idx    int
	status string
	err    error
}

func NewMenuModel(ctx context.Context, auth service.ClientAuthService, recovery service.ClientRecoveryService) *MenuModel {
	return &MenuModel{ctx: ctx, auth: auth, recovery: recovery}
}

// Init refreshes the recovery status every time the menu is opened.
func (m *MenuModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
		m.err = nil
		return m, m.cmdRefresh()
	case recoveryStatusMsg:
		m.busy = false
		m.loaded = true
		m.hasRecovery = msg.has
		if msg.login != "" {
			m.login = msg.login
		}
		m.err = msg.err
		m.clampCursor()
		return m, nil
	case loggedOutMsg:
		m.busy = false
		m.reset()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.status = ""
		m.err = nil
		return m, m.run(items[m.idx].action)
	}

	return m, nil
}

func (m *MenuModel) run(action menuAction) tea.Cmd {
	switch action {
	case actionSetupRecovery:
		return navigate(pageSetup, startSetupMsg{})
	case actionRestore:
		return navigate(pageRestore, startRestoreMsg{})
	case actionChangePassword:
		return navigate(pagePassword, nil)
	case actionRemoveRecovery:
		m.busy = true
		return m.cmdRemoveRecovery()
	case actionLogout:
		m.busy = true
		return m.cmdLogout()
	default:
		return tea.Quit
	}
}

func (m *MenuModel) items() []menuItem {
	setup := "Set up recovery phrase"
	if m.hasRecovery {
		setup = "Replace recovery phrase"
	}

	items := []menuItem{
		{label: setup, action: actionSetupRecovery},
		{label: "Restore from recovery phrase", action: actionRestore},
		{label: "Change password", action: actionChangePassword},
	}
	if m.hasRecovery {
		items = append(items, menuItem{label: "Remove recovery phrase", action: actionRemoveRecovery})
	}
	return append(items,
		menuItem{label: "Log out", action: actionLogout},
		menuItem{label: "Quit", action: actionQuit},
	)
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Account: ")
	b.WriteString(valueOrDash(m.login))
	b.WriteString("\n\n")

	if m.loaded && !m.hasRecovery {
		b.WriteString(bannerStyle.Render("! No recovery phrase is set up. If you forget your password, your data cannot be restored."))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(noticeStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorText(m.err))
		b.WriteString("\n\n")
	}

	labels := make([]string, 0, 6)
	for _, item := range m.items() {
		labels = append(labels, item.label)
	}
	b.WriteString(renderMenuTable(labels, m.idx))

	if m.busy {
		b.WriteString("\n\n[Working...]")
	}

	return renderPage("MAIN MENU", b.String(), "enter: select │ ↑/↓: move │ v: version")
}

func (m *MenuModel) reset() {
	m.login = ""
	m.hasRecovery = false
	m.loaded = false
	m.idx = 0
	m.status = ""
	m.err = nil
}

func (m *MenuModel) clampCursor() {
	if n := len(m.items()); m.idx >= n {
		m.idx = n - 1
	}
}

func (m *MenuModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	recovery := m.recovery

	return func() tea.Msg {
		var login string
		if profile, err := auth.Profile(ctx); err == nil {
			login = profile.Login
		}
		has, err := recovery.RefreshStatus(ctx)
		return recoveryStatusMsg{login: login, has: has, err: err}
	}
}

func (m *MenuModel) cmdRemoveRecovery() tea.Cmd {
	ctx := m.ctx
	recovery := m.recovery

	return func() tea.Msg {
		if err := recovery.Remove(ctx); err != nil {
			return recoveryStatusMsg{has: true, err: err}
		}
		return notice{text: "Recovery phrase removed"}
	}
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}
