package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos (los comandos asíncronos no se ejecutan en estos tests;
// los fakes solo existen para poder armar los casos de uso reales)
// ──────────────────────────────────────────────────────────────────────────────

type nilAuth struct{}

func (nilAuth) CurrentSession(context.Context) (*entity.Session, error) {
	return nil, domain.ErrNoSession
}
func (nilAuth) SignIn(context.Context, string, string) (*entity.Session, error) {
	return nil, domain.ErrInvalidCredentials
}
func (nilAuth) SignUp(context.Context, string, string, string) (*entity.Session, error) {
	return nil, domain.ErrInvalidCredentials
}
func (nilAuth) SignOut(context.Context) error { return nil }

type nilData struct{}

func (nilData) ProfileByUser(context.Context, string) (*entity.Profile, error) { return nil, nil }
func (nilData) MembershipsByUser(context.Context, string) ([]entity.Membership, error) {
	return nil, nil
}
func (nilData) ClientsByOffice(context.Context, string) ([]entity.Client, error) { return nil, nil }
func (nilData) LeadsByOffice(context.Context, string) ([]entity.Lead, error)     { return nil, nil }
func (nilData) FeesByOffice(context.Context, string) ([]entity.Fee, error)       { return nil, nil }
func (nilData) InsertOffice(_ context.Context, o entity.Office) (*entity.Office, error) {
	return &o, nil
}
func (nilData) InsertMembership(_ context.Context, m entity.Membership) (*entity.Membership, error) {
	return &m, nil
}
func (nilData) DeleteOffice(context.Context, string) error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	log := logger.Nop()
	return New(Deps{
		Resolver:     session.NewResolver(nilAuth{}, log),
		Workspace:    office.NewWorkspaceUseCase(nilData{}, log),
		CreateOffice: office.NewCreateUseCase(nilData{}, log),
		Dashboard:    dashboard.NewUseCase(nilData{}),
		State:        appstate.New(),
		Refresh:      config.RefreshConfig{},
		Log:          log,
	})
}

// update aplica un mensaje y devuelve el modelo concreto.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func demoSession() *entity.Session {
	return &entity.Session{AccessToken: "tok", UserID: "user-1", Email: "demo@officedesk.dev"}
}

func demoMembership(officeID, name, role string) entity.Membership {
	return entity.Membership{
		ID: "m-" + officeID, UserID: "user-1", OfficeID: officeID, Role: role, Active: true,
		Office: &entity.Office{ID: officeID, Name: name},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de sesión y enrutamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SinSesionAbreLogin(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, sessionResolvedMsg{session: nil})

	assert.Equal(t, ScreenAuth, m.screen)
	assert.False(t, m.loading)
}

func TestUpdate_SesionVigenteDisparaLaCargaDelWorkspace(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, sessionResolvedMsg{session: demoSession()})

	require.NotNil(t, m.deps.State.Session())
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestUpdate_UnaMembresiaAterrizaEnElDashboard(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})

	gen := m.deps.State.NextGeneration()
	ws := &dto.WorkspaceDTO{
		DisplayName: "Dora Demo",
		Memberships: []entity.Membership{demoMembership("o-1", "Acme Asesores", entity.RoleAdmin)},
		Route:       dto.RouteDashboard,
	}
	m, cmd := update(t, m, workspaceLoadedMsg{gen: gen, workspace: ws})

	assert.Equal(t, ScreenDashboard, m.screen)
	assert.Equal(t, TabDashboard, m.tab)
	require.NotNil(t, m.deps.State.CurrentOffice())
	assert.Equal(t, "o-1", m.deps.State.CurrentOffice().ID)
	assert.Equal(t, "Dora Demo", m.deps.State.Session().DisplayName)
	assert.NotNil(t, cmd, "el dashboard dispara su propia carga")
}

func TestUpdate_SinMembresiasAterrizaEnElSelector(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})

	gen := m.deps.State.NextGeneration()
	m, _ = update(t, m, workspaceLoadedMsg{gen: gen, workspace: &dto.WorkspaceDTO{Route: dto.RouteEmptySelector}})

	assert.Equal(t, ScreenOffices, m.screen)
	assert.False(t, m.loading)
}

func TestUpdate_VariasMembresiasAterrizanEnElSelector(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})

	gen := m.deps.State.NextGeneration()
	ws := &dto.WorkspaceDTO{
		Memberships: []entity.Membership{
			demoMembership("o-1", "Acme Asesores", entity.RoleAdmin),
			demoMembership("o-2", "Bufete Norte", entity.RoleUser),
		},
		Route: dto.RouteSelector,
	}
	m, _ = update(t, m, workspaceLoadedMsg{gen: gen, workspace: ws})

	assert.Equal(t, ScreenOffices, m.screen)
	assert.Nil(t, m.deps.State.CurrentOffice(), "el selector no auto-selecciona")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cargas superadas
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ResultadoConGeneracionSuperadaSeDescarta(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})

	vieja := m.deps.State.NextGeneration()
	m.deps.State.NextGeneration() // algo más arrancó otra carga

	ws := &dto.WorkspaceDTO{
		Memberships: []entity.Membership{demoMembership("o-1", "Acme Asesores", entity.RoleAdmin)},
		Route:       dto.RouteDashboard,
	}
	m, cmd := update(t, m, workspaceLoadedMsg{gen: vieja, workspace: ws})

	assert.NotEqual(t, ScreenDashboard, m.screen, "un resultado superado no cambia de pantalla")
	assert.Nil(t, m.deps.State.CurrentOffice())
	assert.Nil(t, cmd)
}

func TestUpdate_DashboardSuperadoNoPisaElResumen(t *testing.T) {
	m := newTestModel(t)
	vieja := m.deps.State.NextGeneration()
	m.deps.State.NextGeneration()

	m, _ = update(t, m, dashboardLoadedMsg{gen: vieja, summary: &dto.DashboardSummaryDTO{ActiveClients: 99}})

	assert.Nil(t, m.summary)
}

func TestUpdate_FalloDeCargaSuperadoNoMuestraAviso(t *testing.T) {
	m := newTestModel(t)
	vieja := m.deps.State.NextGeneration()
	m.deps.State.NextGeneration()

	m, _ = update(t, m, loadFailedMsg{gen: vieja, err: domain.ErrNotFound})

	assert.Nil(t, m.notice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Presentación de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CredencialesInvalidasMuestranBannerNoAviso(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: nil}) // pantalla auth

	m, cmd := update(t, m, authResultMsg{err: domain.ErrInvalidCredentials})

	assert.NotEmpty(t, m.banner)
	assert.Nil(t, m.notice, "las credenciales no bloquean la pantalla")
	assert.Equal(t, ScreenAuth, m.screen)
	assert.NotNil(t, cmd, "se programa la expiración del banner")
}

func TestUpdate_BannerExpiraSoloConSuID(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: nil})
	m, _ = update(t, m, authResultMsg{err: domain.ErrInvalidCredentials})
	idViejo := m.bannerID

	// Un segundo fallo re-arma el banner con id nuevo.
	m, _ = update(t, m, authResultMsg{err: domain.ErrInvalidCredentials})

	m, _ = update(t, m, bannerExpiredMsg{id: idViejo})
	assert.NotEmpty(t, m.banner, "la expiración del banner anterior no descarta el vigente")

	m, _ = update(t, m, bannerExpiredMsg{id: m.bannerID})
	assert.Empty(t, m.banner)
}

func TestUpdate_EsquemaFaltanteEsAvisoFatal(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	gen := m.deps.State.NextGeneration()

	schemaErr := &domain.ProviderError{Code: domain.CodeUndefinedRelation, Message: "relation does not exist"}
	m, _ = update(t, m, loadFailedMsg{gen: gen, err: schemaErr})

	require.NotNil(t, m.notice)
	assert.True(t, m.notice.Fatal())

	// Descartar el aviso fatal cierra la sesión y vuelve al login.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.notice)
	assert.Equal(t, ScreenAuth, m.screen)
	assert.Nil(t, m.deps.State.Session())
}

func TestUpdate_FalloGenericoEsAvisoNoFatal(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	gen := m.deps.State.NextGeneration()

	m, _ = update(t, m, loadFailedMsg{gen: gen, err: domain.ErrNotFound})

	require.NotNil(t, m.notice)
	assert.False(t, m.notice.Fatal())

	// Descartarlo no toca la sesión.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.notice)
	assert.NotNil(t, m.deps.State.Session())
}

// Un aviso bloqueante captura el teclado: otras teclas no hacen nada.
func TestUpdate_AvisoBloqueanteCapturaElTeclado(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	gen := m.deps.State.NextGeneration()
	m, _ = update(t, m, loadFailedMsg{gen: gen, err: domain.ErrNotFound})
	require.NotNil(t, m.notice)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, m.notice, "solo enter/esc descartan el aviso")
	assert.False(t, m.quitting)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y refresco periódico
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaTodoYVuelveAlLogin(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	gen := m.deps.State.NextGeneration()
	ws := &dto.WorkspaceDTO{
		Memberships: []entity.Membership{demoMembership("o-1", "Acme Asesores", entity.RoleAdmin)},
		Route:       dto.RouteDashboard,
	}
	m, _ = update(t, m, workspaceLoadedMsg{gen: gen, workspace: ws})
	m.summary = &dto.DashboardSummaryDTO{ActiveClients: 3}

	enVuelo := m.deps.State.NextGeneration()
	m, cmd := m.logout()

	assert.Equal(t, ScreenAuth, m.screen)
	assert.Nil(t, m.deps.State.Session())
	assert.Nil(t, m.deps.State.CurrentOffice())
	assert.Nil(t, m.summary)
	assert.NotNil(t, cmd)
	assert.False(t, m.deps.State.IsCurrent(enVuelo), "las cargas en vuelo quedan superadas")
}

func TestUpdate_RefrescoSoloEnLaPestanaDelDashboard(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	gen := m.deps.State.NextGeneration()
	ws := &dto.WorkspaceDTO{
		Memberships: []entity.Membership{demoMembership("o-1", "Acme Asesores", entity.RoleAdmin)},
		Route:       dto.RouteDashboard,
	}
	m, _ = update(t, m, workspaceLoadedMsg{gen: gen, workspace: ws})
	genDash := m.deps.State.NextGeneration()

	// El tick de una pestaña que ya no está activa no recarga.
	m.tab = TabLeads
	_, cmd := update(t, m, refreshTickMsg{gen: genDash, tab: TabDashboard})
	assert.Nil(t, cmd)

	// En la pestaña vigente sí.
	m.tab = TabDashboard
	gen2 := m.deps.State.NextGeneration()
	_, cmd = update(t, m, refreshTickMsg{gen: gen2, tab: TabDashboard})
	assert.NotNil(t, cmd)
}

// Cada pestaña programa su refresco con su propio intervalo configurado.
func TestUpdate_LasPestanasDeListadosProgramanSuRefresco(t *testing.T) {
	m := newTestModel(t)
	m.deps.Refresh = config.RefreshConfig{LeadsSeconds: 120, ClientsSeconds: 0}

	gen := m.deps.State.NextGeneration()
	_, cmd := update(t, m, leadsLoadedMsg{gen: gen, leads: []entity.Lead{}})
	assert.NotNil(t, cmd)

	gen = m.deps.State.NextGeneration()
	_, cmd = update(t, m, clientsLoadedMsg{gen: gen, clients: []entity.Client{}})
	assert.Nil(t, cmd, "intervalo cero: la pestaña de clientes no hace polling")
}

func TestUpdate_ElIntervaloCeroDesactivaElPolling(t *testing.T) {
	m := newTestModel(t) // Refresh en cero
	gen := m.deps.State.NextGeneration()

	_, cmd := update(t, m, dashboardLoadedMsg{gen: gen, summary: &dto.DashboardSummaryDTO{}})
	assert.Nil(t, cmd)
}

func TestUpdate_ConIntervaloSeProgramaElRefresco(t *testing.T) {
	m := newTestModel(t)
	m.deps.Refresh = config.RefreshConfig{DashboardSeconds: 60}
	gen := m.deps.State.NextGeneration()

	_, cmd := update(t, m, dashboardLoadedMsg{gen: gen, summary: &dto.DashboardSummaryDTO{}})
	assert.NotNil(t, cmd)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios: envío único y feedback visible
// ──────────────────────────────────────────────────────────────────────────────

// countingData cuenta las altas de oficina para verificar envíos únicos.
type countingData struct {
	nilData
	insertedOffices int
}

func (d *countingData) InsertOffice(_ context.Context, o entity.Office) (*entity.Office, error) {
	d.insertedOffices++
	return &o, nil
}

func newCountingModel(t *testing.T) (Model, *countingData) {
	t.Helper()
	data := &countingData{}
	log := logger.Nop()
	m := New(Deps{
		Resolver:     session.NewResolver(nilAuth{}, log),
		Workspace:    office.NewWorkspaceUseCase(data, log),
		CreateOffice: office.NewCreateUseCase(data, log),
		Dashboard:    dashboard.NewUseCase(data),
		State:        appstate.New(),
		Refresh:      config.RefreshConfig{},
		Log:          log,
	})
	return m, data
}

// execute corre un comando, expandiendo lotes, para materializar sus efectos.
func execute(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			execute(c)
		}
	}
}

// Un modal completado se envía una sola vez: el alta no es idempotente y un
// mensaje posterior (p. ej. un cambio de tamaño de ventana) no debe repetirla.
func TestUpdate_ModalDeOficinaCompletadoSeEnviaUnaSolaVez(t *testing.T) {
	m, data := newCountingModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	m.loading = false
	m.screen = ScreenOffices
	m.newOfficeForm()
	*m.offName = "Acme Asesores"
	m.officeForm.State = huh.StateCompleted

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	execute(cmd)

	assert.Nil(t, m.officeForm, "el modal se cierra al enviar")
	assert.True(t, m.loading)
	assert.Equal(t, 1, data.insertedOffices)

	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	execute(cmd)
	assert.Equal(t, 1, data.insertedOffices, "un mensaje posterior no repite el alta")
}

func TestUpdate_LoginCompletadoSeEnviaYRearmaElFormulario(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: nil})
	*m.email = "demo@officedesk.dev"
	*m.password = "demo1234"
	m.authForm.State = huh.StateCompleted

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	require.NotNil(t, m.authForm)
	assert.NotEqual(t, huh.StateCompleted, m.authForm.State, "el formulario queda rearmado")

	_, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd, "con la carga en vuelo el formulario no recibe entradas")
}

func TestUpdate_TecladoInactivoConCargaEnVuelo(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: demoSession()})
	m.screen = ScreenOffices
	require.True(t, m.loading)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Nil(t, cmd)
	assert.Nil(t, m.officeForm, "la carga en vuelo no abre el modal")
}

// El banner transitorio es visible en cualquier pantalla, no solo en el login.
func TestView_ElBannerSeMuestraEnCualquierPantalla(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, sessionResolvedMsg{session: nil})
	m.banner = "el nombre de la oficina es obligatorio"

	m.screen = ScreenOffices
	assert.Contains(t, m.View(), "el nombre de la oficina es obligatorio")

	m.screen = ScreenAuth
	assert.Contains(t, m.View(), "el nombre de la oficina es obligatorio")
}
