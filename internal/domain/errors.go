package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNoOfficeSelected   = errors.New("no hay oficina seleccionada")
	ErrOfficeNotInList    = errors.New("la oficina no pertenece a las membresías cargadas")
)

// CodeUndefinedRelation código SQLSTATE que el proveedor devuelve cuando el
// esquema nunca fue provisionado (tabla inexistente). Es el único código que
// la máquina de estados distingue con mensaje propio.
const CodeUndefinedRelation = "42P01"

// ProviderError descriptor de error del proveedor remoto: código legible por
// máquina + mensaje crudo del servicio.
type ProviderError struct {
	Code    string
	Message string
	Details string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("proveedor remoto (%s): %s", e.Code, e.Message)
	}
	return "proveedor remoto: " + e.Message
}

// IsUndefinedRelation indica si err (o su cadena de wraps) es el error de
// esquema no provisionado.
func IsUndefinedRelation(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == CodeUndefinedRelation
}
