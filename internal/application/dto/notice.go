package dto

import (
	"errors"

	"github.com/jhoicas/officedesk/internal/domain"
)

// NoticeCategory categoría de presentación de un fallo. La taxonomía del
// sistema original era inconsistente (unos errores inline, otros en alert);
// aquí la presentación se unifica en Notice conservando las tres categorías.
type NoticeCategory int

const (
	// NoticeCredential error de credenciales (login/registro): banner transitorio, no fatal.
	NoticeCredential NoticeCategory = iota
	// NoticeSchemaMissing el esquema remoto nunca fue provisionado: bloqueante, fatal para la sesión.
	NoticeSchemaMissing
	// NoticeGeneric fallo genérico de carga/escritura: bloqueante, no fatal.
	NoticeGeneric
)

// Notice mensaje de fallo listo para renderizar.
type Notice struct {
	Category NoticeCategory
	Message  string
}

// Fatal indica si la notificación invalida la sesión en curso.
func (n Notice) Fatal() bool { return n.Category == NoticeSchemaMissing }

// NoticeFromError clasifica un error en su categoría de presentación.
func NoticeFromError(err error) Notice {
	switch {
	case domain.IsUndefinedRelation(err):
		return Notice{
			Category: NoticeSchemaMissing,
			Message:  "el esquema de la base de datos no está provisionado; ejecuta las migraciones del proyecto",
		}
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidInput):
		return Notice{Category: NoticeCredential, Message: err.Error()}
	default:
		return Notice{Category: NoticeGeneric, Message: err.Error()}
	}
}
