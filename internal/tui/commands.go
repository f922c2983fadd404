package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/officedesk/internal/application/dto"
)

// Comandos asíncronos. Todas las llamadas remotas son de un solo intento y
// sin timeout propio; el contexto solo se cancela al cerrar el programa.

func (m Model) resolveSessionCmd() tea.Cmd {
	resolver := m.deps.Resolver
	return func() tea.Msg {
		return sessionResolvedMsg{session: resolver.Resolve(context.Background())}
	}
}

func (m Model) signInCmd(email, password string) tea.Cmd {
	resolver := m.deps.Resolver
	return func() tea.Msg {
		sess, err := resolver.SignIn(context.Background(), email, password)
		return authResultMsg{session: sess, err: err}
	}
}

func (m Model) signUpCmd(email, password, fullName string) tea.Cmd {
	resolver := m.deps.Resolver
	return func() tea.Msg {
		sess, err := resolver.SignUp(context.Background(), email, password, fullName)
		return authResultMsg{session: sess, err: err}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	resolver := m.deps.Resolver
	return func() tea.Msg {
		resolver.SignOut(context.Background())
		return nil
	}
}

func (m Model) loadWorkspaceCmd(gen uint64, userID string) tea.Cmd {
	uc := m.deps.Workspace
	return func() tea.Msg {
		ws, err := uc.Load(context.Background(), userID)
		if err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		return workspaceLoadedMsg{gen: gen, workspace: ws}
	}
}

func (m Model) loadDashboardCmd(gen uint64, officeID string) tea.Cmd {
	uc := m.deps.Dashboard
	return func() tea.Msg {
		summary, err := uc.GetSummary(context.Background(), officeID)
		if err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		return dashboardLoadedMsg{gen: gen, summary: summary}
	}
}

func (m Model) loadClientsCmd(gen uint64, officeID string) tea.Cmd {
	uc := m.deps.Dashboard
	return func() tea.Msg {
		clients, err := uc.ListClients(context.Background(), officeID)
		if err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		return clientsLoadedMsg{gen: gen, clients: clients}
	}
}

func (m Model) loadLeadsCmd(gen uint64, officeID string) tea.Cmd {
	uc := m.deps.Dashboard
	return func() tea.Msg {
		leads, err := uc.ListLeads(context.Background(), officeID)
		if err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		return leadsLoadedMsg{gen: gen, leads: leads}
	}
}

func (m Model) createOfficeCmd(userID string, in dto.CreateOfficeInput) tea.Cmd {
	uc := m.deps.CreateOffice
	return func() tea.Msg {
		created, err := uc.Create(context.Background(), userID, in)
		return officeCreatedMsg{office: created, err: err}
	}
}

func (m Model) bannerCmd(id int) tea.Cmd {
	return tea.Tick(bannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

func (m Model) refreshCmd(gen uint64, tab Tab, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen, tab: tab}
	})
}
