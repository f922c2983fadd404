package dto

import "github.com/jhoicas/officedesk/internal/domain/entity"

// Route decisión de enrutamiento tras cargar las membresías del usuario.
type Route int

const (
	// RouteEmptySelector sin membresías: selector vacío invitando a crear oficina.
	RouteEmptySelector Route = iota
	// RouteDashboard exactamente una membresía: se auto-selecciona y va directo al dashboard.
	RouteDashboard
	// RouteSelector más de una membresía: selector con la lista completa.
	RouteSelector
)

// WorkspaceDTO resultado de la carga de espacio de trabajo (perfil + membresías).
// El orden de Memberships es el que entregó el proveedor; no se impone orden propio.
type WorkspaceDTO struct {
	DisplayName string
	Memberships []entity.Membership
	Route       Route
}

// CreateOfficeInput datos del formulario de creación de oficina.
type CreateOfficeInput struct {
	Name    string
	NIT     string
	Address string
	Phone   string
	Email   string
}
