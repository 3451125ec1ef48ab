package tui

import (
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) turns auth results into page changes
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
	overlay       *errorOverlayModel
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case r.overlay != nil:
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case LoginResult:
		// The login page clears its inputs first.
		r = r.delegate(msg)
		switch {
		case msg.Err == nil:
			return r, navigate(pageMenu, nil)
		case errors.Is(msg.Err, keystore.ErrMasterKeyUnwrap):
			return r, navigate(pageRestore, startRestoreMsg{notice: app.UserMessage(msg.Err)})
		}
		return r, nil

	case loggedOutMsg:
		r = r.delegate(msg)
		if msg.err != nil {
			r.overlay = &errorOverlayModel{message: app.UserMessage(msg.err)}
		}
		return r, navigate(pageWelcome, notice{text: "Logged out"})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return r.overlay.View()
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("GO ZK VAULT", "", "")
	}
	return r.current.View()
}

// delegate hands msg to the active page and drops the command: the caller
// decides where to go next.
func (r RootModel) delegate(msg tea.Msg) RootModel {
	if r.current != nil {
		r.current, _ = r.current.Update(msg)
	}
	return r
}

func (r RootModel) isMenuPage() bool {
	switch r.current.(type) {
	case *MenuModel, *WelcomeModel:
		return true
	}
	return false
}
