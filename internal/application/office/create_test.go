package office_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/application/office"
	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/pkg/logger"
)

func TestCreate_AltaExitosaConMembresiaAdmin(t *testing.T) {
	data := &fakeData{}
	uc := office.NewCreateUseCase(data, logger.Nop())

	created, err := uc.Create(context.Background(), "user-1", dto.CreateOfficeInput{
		Name: "  Acme Asesores  ",
		NIT:  "900123456-7",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Acme Asesores", created.Name, "el nombre se guarda sin espacios de borde")
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.ID)

	require.Len(t, data.insertedMemberships, 1)
	m := data.insertedMemberships[0]
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, created.ID, m.OfficeID)
	assert.Equal(t, entity.RoleAdmin, m.Role, "el creador entra como admin")
	assert.True(t, m.Active)
}

func TestCreate_NombreVacioEsEntradaInvalida(t *testing.T) {
	data := &fakeData{}
	uc := office.NewCreateUseCase(data, logger.Nop())

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOfficeInput{Name: "   "})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, data.insertedOffices, "no debe tocar el proveedor con entrada inválida")
}

func TestCreate_FalloDeOficinaNoDejaRastro(t *testing.T) {
	data := &fakeData{insertOfficeErr: errors.New("42501")}
	uc := office.NewCreateUseCase(data, logger.Nop())

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOfficeInput{Name: "Acme"})
	require.Error(t, err)

	assert.Empty(t, data.insertedMemberships)
	assert.Empty(t, data.deletedOffices)
}

// Si la membresía falla, la oficina recién insertada se revierte.
func TestCreate_FalloDeMembresiaDisparaLimpieza(t *testing.T) {
	data := &fakeData{insertMembershipErr: errors.New("conexión rechazada")}
	uc := office.NewCreateUseCase(data, logger.Nop())

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOfficeInput{Name: "Acme"})
	require.Error(t, err)

	require.Len(t, data.insertedOffices, 1)
	require.Len(t, data.deletedOffices, 1)
	assert.Equal(t, data.insertedOffices[0].ID, data.deletedOffices[0],
		"la limpieza debe borrar exactamente la oficina huérfana")
}

// La limpieza fallida no enmascara el error original de la membresía.
func TestCreate_LimpiezaFallidaConservaElErrorOriginal(t *testing.T) {
	data := &fakeData{
		insertMembershipErr: errors.New("membresía rechazada"),
		deleteOfficeErr:     errors.New("delete rechazado"),
	}
	uc := office.NewCreateUseCase(data, logger.Nop())

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOfficeInput{Name: "Acme"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "membresía rechazada")
}

// Tras un alta exitosa, recargar el workspace incluye la oficina nueva una sola vez.
func TestCreate_RecargaIncluyeLaOficinaNueva(t *testing.T) {
	data := &fakeData{}
	createUC := office.NewCreateUseCase(data, logger.Nop())
	loadUC := office.NewWorkspaceUseCase(data, logger.Nop())

	created, err := createUC.Create(context.Background(), "user-1", dto.CreateOfficeInput{Name: "Acme"})
	require.NoError(t, err)

	// El fake devuelve en la recarga lo que el alta insertó.
	data.memberships = data.insertedMemberships

	ws, err := loadUC.Load(context.Background(), "user-1")
	require.NoError(t, err)

	var hits int
	for _, m := range ws.Memberships {
		if m.OfficeID == created.ID {
			hits++
		}
	}
	assert.Equal(t, 1, hits, "la oficina nueva aparece exactamente una vez")
}
