package office

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/internal/domain/provider"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// CreateUseCase alta de oficinas: dos escrituras dependientes contra el
// proveedor (oficina y membresía admin del creador). El proveedor no ofrece
// transacciones al cliente; si la segunda escritura falla se intenta una
// limpieza compensatoria de la oficina huérfana.
type CreateUseCase struct {
	data provider.DataProvider
	log  *logger.Logger
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(data provider.DataProvider, log *logger.Logger) *CreateUseCase {
	return &CreateUseCase{data: data, log: log}
}

// Create inserta la oficina y luego la membresía del creador como
// admin/activa. Devuelve la oficina creada; tras un alta exitosa el llamador
// debe recargar el espacio de trabajo para refrescar la lista.
func (uc *CreateUseCase) Create(ctx context.Context, userID string, in dto.CreateOfficeInput) (*entity.Office, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la oficina es obligatorio", domain.ErrInvalidInput)
	}

	now := time.Now()
	office := entity.Office{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		NIT:       strings.TrimSpace(in.NIT),
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.data.InsertOffice(ctx, office)
	if err != nil {
		return nil, fmt.Errorf("crear oficina: %w", err)
	}

	membership := entity.Membership{
		ID:       uuid.New().String(),
		UserID:   userID,
		OfficeID: created.ID,
		Role:     entity.RoleAdmin,
		Active:   true,
	}
	if _, err := uc.data.InsertMembership(ctx, membership); err != nil {
		// Limpieza compensatoria: sin ella quedaría una oficina sin dueño.
		if cerr := uc.data.DeleteOffice(ctx, created.ID); cerr != nil {
			uc.log.Error().Err(cerr).Str("office_id", created.ID).
				Msg("limpieza compensatoria fallida; oficina huérfana en el proveedor")
		} else {
			uc.log.Warn().Str("office_id", created.ID).
				Msg("membresía fallida; oficina revertida")
		}
		return nil, fmt.Errorf("crear membresía de la oficina: %w", err)
	}

	uc.log.Info().Str("office_id", created.ID).Str("user_id", userID).Msg("oficina creada")
	return created, nil
}
