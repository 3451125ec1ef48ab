package tui

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal interface of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: log.WithComponent("tui")}, nil
}

// Run blocks until the user quits. With unlocked set the session starts in
// the main menu, otherwise on the welcome page. ErrUserQuit is returned
// when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context, unlocked bool) error {
	start := pageWelcome
	if unlocked {
		start = pageMenu
	}

	root := NewRootModel(t.pages(ctx), start, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("quit by user")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	auth := t.services.AuthService
	recovery := t.services.RecoveryService

	return map[string]tea.Model{
		pageWelcome:  NewWelcomeModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
		pageMenu:     NewMenuModel(ctx, auth, recovery),
		pageSetup:    NewSetupModel(ctx, recovery),
		pageRestore:  NewRestoreModel(ctx, auth, recovery),
		pagePassword: NewPasswordModel(ctx, auth),
	}
}
