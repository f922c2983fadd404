package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jhoicas/officedesk/internal/application/appstate"
	"github.com/jhoicas/officedesk/internal/application/dashboard"
	"github.com/jhoicas/officedesk/internal/application/office"
	"github.com/jhoicas/officedesk/internal/application/session"
	"github.com/jhoicas/officedesk/internal/infrastructure/hostedapi"
	"github.com/jhoicas/officedesk/internal/tui"
	"github.com/jhoicas/officedesk/pkg/config"
	"github.com/jhoicas/officedesk/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "desk",
		Short:         "Cliente de terminal del CRM de oficinas",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	// La TUI ocupa la pantalla alterna: los logs van a archivo, nunca a stdout.
	logFile := cfg.App.LogFile
	if logFile == "" {
		logFile = "officedesk.log"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", File: logFile})
	log.Info().Str("env", cfg.App.Env).Str("provider", cfg.Provider.URL).Msg("iniciando cliente")

	var store *hostedapi.TokenStore
	if cfg.Auth.PersistSession {
		store, err = hostedapi.NewTokenStore(cfg.Auth.SessionFile)
		if err != nil {
			log.Warn().Err(err).Msg("persistencia de sesión no disponible; se continúa sin ella")
			store = nil
		}
	}

	client := hostedapi.New(cfg.Provider.URL, cfg.Provider.AnonKey, store, log)

	state := appstate.New()
	deps := tui.Deps{
		Resolver:     session.NewResolver(client, log),
		Workspace:    office.NewWorkspaceUseCase(client, log),
		CreateOffice: office.NewCreateUseCase(client, log),
		Dashboard:    dashboard.NewUseCase(client),
		State:        state,
		Refresh:      cfg.Refresh,
		Log:          log,
	}

	program := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interfaz de terminal: %w", err)
	}
	return nil
}
