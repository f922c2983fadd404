package office_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/application/office"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del DataProvider
// ──────────────────────────────────────────────────────────────────────────────

type fakeData struct {
	profile       *entity.Profile
	profileErr    error
	memberships   []entity.Membership
	membershipErr error

	insertedOffices     []entity.Office
	insertedMemberships []entity.Membership
	deletedOffices      []string

	insertOfficeErr     error
	insertMembershipErr error
	deleteOfficeErr     error
}

func (f *fakeData) ProfileByUser(_ context.Context, _ string) (*entity.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeData) MembershipsByUser(_ context.Context, _ string) ([]entity.Membership, error) {
	return f.memberships, f.membershipErr
}

func (f *fakeData) ClientsByOffice(_ context.Context, _ string) ([]entity.Client, error) {
	return nil, nil
}
func (f *fakeData) LeadsByOffice(_ context.Context, _ string) ([]entity.Lead, error) {
	return nil, nil
}
func (f *fakeData) FeesByOffice(_ context.Context, _ string) ([]entity.Fee, error) {
	return nil, nil
}

func (f *fakeData) InsertOffice(_ context.Context, o entity.Office) (*entity.Office, error) {
	if f.insertOfficeErr != nil {
		return nil, f.insertOfficeErr
	}
	f.insertedOffices = append(f.insertedOffices, o)
	return &o, nil
}

func (f *fakeData) InsertMembership(_ context.Context, m entity.Membership) (*entity.Membership, error) {
	if f.insertMembershipErr != nil {
		return nil, f.insertMembershipErr
	}
	f.insertedMemberships = append(f.insertedMemberships, m)
	return &m, nil
}

func (f *fakeData) DeleteOffice(_ context.Context, id string) error {
	f.deletedOffices = append(f.deletedOffices, id)
	return f.deleteOfficeErr
}

func membership(officeID, name string) entity.Membership {
	return entity.Membership{
		ID:       "m-" + officeID,
		UserID:   "user-1",
		OfficeID: officeID,
		Role:     entity.RoleUser,
		Active:   true,
		Office:   &entity.Office{ID: officeID, Name: name},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Enrutamiento según el número de membresías
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SinMembresiasVaAlSelectorVacio(t *testing.T) {
	uc := office.NewWorkspaceUseCase(&fakeData{}, logger.Nop())

	ws, err := uc.Load(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, dto.RouteEmptySelector, ws.Route)
	assert.Empty(t, ws.Memberships)
}

func TestLoad_UnaMembresiaVaDirectoAlDashboard(t *testing.T) {
	data := &fakeData{memberships: []entity.Membership{membership("o-1", "Acme Asesores")}}
	uc := office.NewWorkspaceUseCase(data, logger.Nop())

	ws, err := uc.Load(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, dto.RouteDashboard, ws.Route)
	require.Len(t, ws.Memberships, 1)
	assert.Equal(t, "Acme Asesores", ws.Memberships[0].OfficeName())
}

func TestLoad_VariasMembresiasVanAlSelector(t *testing.T) {
	data := &fakeData{memberships: []entity.Membership{
		membership("o-1", "Acme Asesores"),
		membership("o-2", "Bufete Norte"),
	}}
	uc := office.NewWorkspaceUseCase(data, logger.Nop())

	ws, err := uc.Load(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, dto.RouteSelector, ws.Route)
	assert.Len(t, ws.Memberships, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil cosmético vs membresías obligatorias
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_PerfilRellenaElNombreVisible(t *testing.T) {
	data := &fakeData{profile: &entity.Profile{UserID: "user-1", FullName: "Dora Demo"}}
	uc := office.NewWorkspaceUseCase(data, logger.Nop())

	ws, err := uc.Load(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Dora Demo", ws.DisplayName)
}

func TestLoad_FalloDePerfilNoEsFatal(t *testing.T) {
	data := &fakeData{
		profileErr:  errors.New("timeout"),
		memberships: []entity.Membership{membership("o-1", "Acme Asesores")},
	}
	uc := office.NewWorkspaceUseCase(data, logger.Nop())

	ws, err := uc.Load(context.Background(), "user-1")
	require.NoError(t, err, "el perfil es cosmético; su fallo no bloquea la carga")

	assert.Empty(t, ws.DisplayName)
	assert.Equal(t, dto.RouteDashboard, ws.Route)
}

func TestLoad_FalloDeMembresiasEsFatal(t *testing.T) {
	data := &fakeData{membershipErr: errors.New("conexión rechazada")}
	uc := office.NewWorkspaceUseCase(data, logger.Nop())

	_, err := uc.Load(context.Background(), "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "membresías")
}
