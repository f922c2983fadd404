// Package tui es la capa de presentación: pantallas {auth, selección de
// oficina, dashboard} con exactamente una pantalla activa a la vez (la última
// activación gana). No consulta al proveedor directamente; consume los casos
// de uso y renderiza sus DTOs.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jhoicas/officedesk/internal/application/appstate"
	"github.com/jhoicas/officedesk/internal/application/dashboard"
	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/application/office"
	"github.com/jhoicas/officedesk/internal/application/session"
	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/pkg/config"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// Screen pantalla activa.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenOffices
	ScreenDashboard
)

// Tab pestaña del dashboard.
type Tab int

const (
	TabDashboard Tab = iota
	TabLeads
	TabClients
)

// authMode modo del formulario de auth.
type authMode int

const (
	modeLogin authMode = iota
	modeSignup
)

// bannerTTL vida del banner transitorio de mensajes de auth.
const bannerTTL = 5 * time.Second

// Deps dependencias de la TUI.
type Deps struct {
	Resolver     *session.Resolver
	Workspace    *office.WorkspaceUseCase
	CreateOffice *office.CreateUseCase
	Dashboard    *dashboard.UseCase
	State        *appstate.State
	Refresh      config.RefreshConfig
	Log          *logger.Logger
}

// Model estado de la interfaz.
type Model struct {
	deps   Deps
	styles Styles

	screen Screen
	width  int
	height int

	// overlay de carga
	loading     bool
	loadingText string
	spinner     spinner.Model

	// banner transitorio (credenciales); se descarta a los 5 s
	banner   string
	bannerID int

	// aviso bloqueante (esquema faltante o fallo genérico)
	notice *dto.Notice

	// pantalla auth; los valores del formulario viven detrás de punteros
	// porque bubbletea copia el Model en cada Update
	mode     authMode
	authForm *huh.Form
	email    *string
	password *string
	fullName *string

	// pantalla de selección de oficina
	cursor     int
	officeForm *huh.Form // modal de creación; nil cuando está cerrado
	offName    *string
	offNIT     *string
	offAddress *string
	offPhone   *string
	offEmail   *string

	// pantalla dashboard
	tab     Tab
	summary *dto.DashboardSummaryDTO
	clients []entity.Client
	leads   []entity.Lead

	quitting bool
}

// New construye el modelo inicial.
func New(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		deps:        deps,
		styles:      DefaultStyles(),
		screen:      ScreenAuth,
		loading:     true,
		loadingText: "Comprobando sesión...",
		spinner:     sp,
		email:       new(string),
		password:    new(string),
		fullName:    new(string),
		offName:     new(string),
		offNIT:      new(string),
		offAddress:  new(string),
		offPhone:    new(string),
		offEmail:    new(string),
	}
}

// Init arranca la resolución de sesión con el overlay de carga activo.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolveSessionCmd())
}

// Update procesa mensajes y transiciones (requisito de Bubble Tea).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.forwardToForm(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionResolvedMsg:
		m.loading = false
		if msg.session == nil {
			return m.activateAuth()
		}
		m.deps.State.SetSession(msg.session)
		return m.startWorkspaceLoad()

	case authResultMsg:
		m.loading = false
		if msg.err != nil {
			return m.presentError(msg.err)
		}
		m.deps.State.SetSession(msg.session)
		return m.startWorkspaceLoad()

	case workspaceLoadedMsg:
		if !m.deps.State.IsCurrent(msg.gen) {
			return m, nil // carga superada: el resultado se descarta
		}
		m.loading = false
		m.deps.State.SetDisplayName(msg.workspace.DisplayName)
		m.deps.State.SetMemberships(msg.workspace.Memberships)
		switch msg.workspace.Route {
		case dto.RouteDashboard:
			if err := m.deps.State.SelectOffice(msg.workspace.Memberships[0].OfficeID); err != nil {
				return m.presentError(err)
			}
			return m.activateDashboard()
		default:
			m.screen = ScreenOffices
			m.cursor = 0
			return m, nil
		}

	case dashboardLoadedMsg:
		if !m.deps.State.IsCurrent(msg.gen) {
			return m, nil
		}
		m.loading = false
		m.summary = msg.summary
		if interval := config.Interval(m.deps.Refresh.DashboardSeconds); interval > 0 {
			return m, m.refreshCmd(msg.gen, TabDashboard, interval)
		}
		return m, nil

	case clientsLoadedMsg:
		if !m.deps.State.IsCurrent(msg.gen) {
			return m, nil
		}
		m.loading = false
		m.clients = msg.clients
		if interval := config.Interval(m.deps.Refresh.ClientsSeconds); interval > 0 {
			return m, m.refreshCmd(msg.gen, TabClients, interval)
		}
		return m, nil

	case leadsLoadedMsg:
		if !m.deps.State.IsCurrent(msg.gen) {
			return m, nil
		}
		m.loading = false
		m.leads = msg.leads
		if interval := config.Interval(m.deps.Refresh.LeadsSeconds); interval > 0 {
			return m, m.refreshCmd(msg.gen, TabLeads, interval)
		}
		return m, nil

	case officeCreatedMsg:
		m.loading = false
		if msg.err != nil {
			return m.presentError(msg.err)
		}
		m.officeForm = nil
		return m.startWorkspaceLoad()

	case loadFailedMsg:
		if !m.deps.State.IsCurrent(msg.gen) {
			return m, nil
		}
		m.loading = false
		return m.presentError(msg.err)

	case bannerExpiredMsg:
		if msg.id == m.bannerID {
			m.banner = ""
		}
		return m, nil

	case refreshTickMsg:
		if m.screen != ScreenDashboard || m.tab != msg.tab || !m.deps.State.IsCurrent(msg.gen) {
			return m, nil
		}
		if off := m.deps.State.CurrentOffice(); off != nil {
			// Refresco silencioso: sin overlay, el contenido se reemplaza al llegar.
			gen := m.deps.State.NextGeneration()
			switch msg.tab {
			case TabLeads:
				return m, m.loadLeadsCmd(gen, off.ID)
			case TabClients:
				return m, m.loadClientsCmd(gen, off.ID)
			default:
				return m, m.loadDashboardCmd(gen, off.ID)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToForm(msg)
}

// handleKey teclas globales y por pantalla.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Un aviso bloqueante captura el teclado hasta descartarse.
	if m.notice != nil {
		if msg.String() == "enter" || msg.String() == "esc" {
			fatal := m.notice.Fatal()
			m.notice = nil
			if fatal {
				return m.logout()
			}
		}
		return m, nil
	}

	// Con una carga en vuelo el teclado queda inactivo hasta el resultado.
	if m.loading {
		return m, nil
	}

	switch m.screen {
	case ScreenAuth:
		return m.handleAuthKey(msg)
	case ScreenOffices:
		return m.handleOfficesKey(msg)
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	}
	return m, nil
}

// activateAuth activa la pantalla de login (la activación desactiva al resto).
func (m Model) activateAuth() (Model, tea.Cmd) {
	m.screen = ScreenAuth
	m.mode = modeLogin
	m.resetAuthForm()
	return m, m.authForm.Init()
}

// activateDashboard activa el dashboard y dispara su carga.
func (m Model) activateDashboard() (Model, tea.Cmd) {
	m.screen = ScreenDashboard
	m.tab = TabDashboard
	off := m.deps.State.CurrentOffice()
	if off == nil {
		return m.presentError(domain.ErrNoOfficeSelected)
	}
	gen := m.deps.State.NextGeneration()
	m.loading = true
	m.loadingText = "Cargando dashboard de " + off.Name + "..."
	return m, tea.Batch(m.spinner.Tick, m.loadDashboardCmd(gen, off.ID))
}

// startWorkspaceLoad dispara la carga de perfil + membresías de la sesión actual.
func (m Model) startWorkspaceLoad() (Model, tea.Cmd) {
	sess := m.deps.State.Session()
	if sess == nil {
		return m.activateAuth()
	}
	gen := m.deps.State.NextGeneration()
	m.loading = true
	m.loadingText = "Cargando espacio de trabajo..."
	return m, tea.Batch(m.spinner.Tick, m.loadWorkspaceCmd(gen, sess.UserID))
}

// presentError clasifica el error: credenciales → banner transitorio;
// el resto → aviso bloqueante (fatal si el esquema no existe).
func (m Model) presentError(err error) (Model, tea.Cmd) {
	n := dto.NoticeFromError(err)
	if n.Category == dto.NoticeCredential {
		m.banner = n.Message
		m.bannerID++
		// El formulario quedó consumido; se rearma para reintentar.
		if m.screen == ScreenAuth {
			m.resetAuthForm()
			return m, tea.Batch(m.bannerCmd(m.bannerID), m.authForm.Init())
		}
		return m, m.bannerCmd(m.bannerID)
	}
	m.notice = &n
	return m, nil
}

// logout limpia el estado y vuelve a la pantalla de auth desde cualquier
// profundidad de navegación. Las cargas en vuelo quedan superadas.
func (m Model) logout() (Model, tea.Cmd) {
	signOut := m.signOutCmd()
	m.deps.State.NextGeneration()
	m.deps.State.Reset()
	m.summary = nil
	m.clients = nil
	m.leads = nil
	m.officeForm = nil
	m.banner = ""
	m.loading = false
	model, initCmd := m.activateAuth()
	return model, tea.Batch(signOut, initCmd)
}
