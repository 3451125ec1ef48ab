package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-zk-vault/internal/recovery"
)

const (
	pageWelcome  = "welcome"
	pageLogin    = "login"
	pageRegister = "register"
	pageMenu     = "menu"
	pageSetup    = "setup"
	pageRestore  = "restore"
	pagePassword = "password"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports a finished login attempt.
type LoginResult struct {
	Err   error
	Login string
}

// RegisterResult reports a finished registration attempt.
type RegisterResult struct {
	Err   error
	Login string
}

// notice is a one-line status shown by the receiving page.
type notice struct {
	text string
}

type recoveryStatusMsg struct {
	login string
	has   bool
	err   error
}

type loggedOutMsg struct {
	err error
}

type startSetupMsg struct{}

type setupVerifiedMsg struct {
	flow *recovery.SetupFlow
	err  error
}

type startRestoreMsg struct {
	notice string
}

type restoreResultMsg struct {
	err error
}

type rewrapResultMsg struct {
	err error
}

type pastedMsg struct {
	text string
	err  error
}

type passwordChangedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
