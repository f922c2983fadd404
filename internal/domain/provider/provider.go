// Package provider define los puertos hacia el proveedor remoto de datos y
// auth (servicio hosteado, opaco para la aplicación). Toda persistencia y toda
// autenticación viven detrás de estas interfaces; el cliente local solo hace
// llamadas request/response de un único intento, sin reintentos.
package provider

import (
	"context"

	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// AuthProvider operaciones de identidad contra el servicio remoto.
type AuthProvider interface {
	// CurrentSession resuelve la sesión persistida, si existe.
	// Devuelve domain.ErrNoSession cuando no hay credencial válida.
	CurrentSession(ctx context.Context) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignUp(ctx context.Context, email, password, fullName string) (*entity.Session, error)
	SignOut(ctx context.Context) error
}

// DataProvider lecturas y escrituras de registros, siempre delegadas al
// servicio remoto (filtros de igualdad/inclusión y joins se resuelven allá).
type DataProvider interface {
	// ProfileByUser devuelve nil sin error si el perfil no existe.
	ProfileByUser(ctx context.Context, userID string) (*entity.Profile, error)
	// MembershipsByUser devuelve las membresías activas del usuario con la
	// oficina embebida, en el orden que el proveedor las entregue.
	MembershipsByUser(ctx context.Context, userID string) ([]entity.Membership, error)

	ClientsByOffice(ctx context.Context, officeID string) ([]entity.Client, error)
	LeadsByOffice(ctx context.Context, officeID string) ([]entity.Lead, error)
	FeesByOffice(ctx context.Context, officeID string) ([]entity.Fee, error)

	// InsertOffice e InsertMembership devuelven la fila creada.
	InsertOffice(ctx context.Context, office entity.Office) (*entity.Office, error)
	InsertMembership(ctx context.Context, m entity.Membership) (*entity.Membership, error)
	// DeleteOffice limpieza compensatoria cuando el alta de membresía falla
	// después de crear la oficina.
	DeleteOffice(ctx context.Context, officeID string) error
}
