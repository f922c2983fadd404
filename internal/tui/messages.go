package tui

import (
	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// Mensajes asíncronos del bucle de la TUI. Los que llevan resultado de una
// carga llevan también su generación; un resultado con generación superada
// se descarta al llegar en lugar de renderizarse.

type sessionResolvedMsg struct {
	session *entity.Session // nil → sin sesión, se abre login
}

type authResultMsg struct {
	session *entity.Session
	err     error
}

type workspaceLoadedMsg struct {
	gen       uint64
	workspace *dto.WorkspaceDTO
}

type dashboardLoadedMsg struct {
	gen     uint64
	summary *dto.DashboardSummaryDTO
}

type clientsLoadedMsg struct {
	gen     uint64
	clients []entity.Client
}

type leadsLoadedMsg struct {
	gen   uint64
	leads []entity.Lead
}

type officeCreatedMsg struct {
	office *entity.Office
	err    error
}

type loadFailedMsg struct {
	gen uint64
	err error
}

// bannerExpiredMsg descarta el banner transitorio si su id sigue vigente.
type bannerExpiredMsg struct {
	id int
}

// refreshTickMsg dispara el refresco periódico de una pestaña del dashboard
// si la vista, la pestaña y la generación siguen vigentes.
type refreshTickMsg struct {
	gen uint64
	tab Tab
}
