package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the registration screen: display
// name, login, password and its confirmation. A successful registration
// leaves the user signed in, so the model navigates to the main menu.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	err        error
	message    string
}

// NewRegisterModel creates a [RegisterModel] with the name field focused.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newInput("name (optional)", false, 128),
			newInput("login", false, 64),
			newInput("password", true, 256),
			newInput("repeat password", true, 256),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears the passwords; on success resets the form and
//     opens the menu, on error shows guidance.
//   - esc              goes back to the welcome page.
//   - tab/shift+tab    moves focus between inputs.
//   - enter            validates inputs (login and passwords required,
//     passwords must match) and dispatches the async registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		m.form.clearSecrets()
		if result.Err != nil {
			m.err = result.Err
			return m, nil
		}

		m.err = nil
		m.form.reset()
		return m, navigate(pageMenu, notice{text: "Account " + result.Login + " created"})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.err = nil
			m.message = ""
			m.form.reset()
			return m, navigate(pageWelcome, nil)
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

			name := strings.TrimSpace(m.form.value(0))
			login := strings.TrimSpace(m.form.value(1))
			pass := m.form.value(2)
			repeat := m.form.value(3)

			m.err = nil
			if login == "" || pass == "" || repeat == "" {
				m.message = "Login and password are required"
				return m, nil
			}
			if pass != repeat {
				m.message = "Passwords do not match"
				return m, nil
			}

			m.message = ""
			m.submitting = true
			return m, m.cmdRegister(login, name, pass)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.render("Name", "Login", "Password", "Repeat password"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
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

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(login, name, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return RegisterResult{
			Err:   auth.Register(ctx, login, name, pass),
			Login: login,
		}
	}
}
