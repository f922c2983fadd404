// Package office contiene los casos de uso del espacio de trabajo:
// carga de perfil y membresías, decisión de enrutamiento y alta de oficinas.
package office

import (
	"context"
	"fmt"

	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/domain/provider"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// WorkspaceUseCase carga el espacio de trabajo de una identidad autenticada.
type WorkspaceUseCase struct {
	data provider.DataProvider
	log  *logger.Logger
}

// NewWorkspaceUseCase construye el caso de uso.
func NewWorkspaceUseCase(data provider.DataProvider, log *logger.Logger) *WorkspaceUseCase {
	return &WorkspaceUseCase{data: data, log: log}
}

// Load obtiene perfil y membresías activas del usuario y decide la ruta:
//
//	0 membresías  → selector vacío (invita a crear oficina)
//	1 membresía   → dashboard directo (auto-selección)
//	>1 membresías → selector con la lista completa
//
// El perfil es cosmético (rellena el nombre visible); si su consulta falla
// se continúa sin nombre y la condición queda en el log. Un fallo al cargar
// membresías sí es un error de carga irrecuperable.
func (uc *WorkspaceUseCase) Load(ctx context.Context, userID string) (*dto.WorkspaceDTO, error) {
	out := &dto.WorkspaceDTO{}

	profile, err := uc.data.ProfileByUser(ctx, userID)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("consulta de perfil fallida; se continúa sin nombre")
	} else if profile != nil {
		out.DisplayName = profile.FullName
	}

	memberships, err := uc.data.MembershipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("workspace: cargar membresías: %w", err)
	}
	// Orden: el que entregue el proveedor; no se impone orden propio.
	out.Memberships = memberships

	switch len(memberships) {
	case 0:
		out.Route = dto.RouteEmptySelector
	case 1:
		out.Route = dto.RouteDashboard
	default:
		out.Route = dto.RouteSelector
	}
	return out, nil
}
