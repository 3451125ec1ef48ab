package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PasswordModel changes the account password. The master key is re-wrapped
// and uploaded in the same step.
type PasswordModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	err        error
	message    string
}

func NewPasswordModel(ctx context.Context, auth service.ClientAuthService) *PasswordModel {
	return &PasswordModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newInput("current password", true, 256),
			newInput("new password", true, 256),
			newInput("repeat new password", true, 256),
		),
	}
}

func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(passwordChangedMsg); ok {
		m.submitting = false
		m.form.reset()
		if result.err != nil {
			m.err = result.err
			return m, nil
		}
		m.err = nil
		return m, navigate(pageMenu, notice{text: "Password changed"})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.err = nil
			m.message = ""
			m.form.reset()
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			current := m.form.value(0)
			next := m.form.value(1)
			repeat := m.form.value(2)

			m.err = nil
			if current == "" || next == "" {
				m.message = "Both passwords are required"
				return m, nil
			}
			if next != repeat {
				m.message = "New passwords do not match"
				return m, nil
			}

			m.message = ""
			m.submitting = true
			return m, m.cmdChange(current, next)
		}
	}

	return m, m.form.update(msg)
}

func (m *PasswordModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.render("Current", "New", "Repeat new"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Changing...]\n")
	} else {
		b.WriteString("\n[Change password]\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorText(m.err))
		b.WriteString("\n")
	}

	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *PasswordModel) cmdChange(current, next string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangePassword(ctx, current, next)}
	}
}
