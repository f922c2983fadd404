package hostedapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// restPath arma la ruta /rest/v1/<tabla>?<query> con los filtros escapados.
func restPath(table string, query url.Values) string {
	return "/rest/v1/" + table + "?" + query.Encode()
}

// ── DataProvider ──────────────────────────────────────────────────────────────

// ProfileByUser devuelve el perfil del usuario, o nil si no existe.
func (c *Client) ProfileByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	q := url.Values{}
	q.Set("id", "eq."+userID)
	q.Set("select", "id,full_name")
	var rows []entity.Profile
	if err := c.do(ctx, http.MethodGet, restPath("profiles", q), nil, &rows); err != nil {
		return nil, fmt.Errorf("consultar perfil: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// MembershipsByUser devuelve las membresías activas del usuario con la
// oficina embebida por join relacional del proveedor. El orden es el que el
// proveedor entregue; aquí no se reordena.
func (c *Client) MembershipsByUser(ctx context.Context, userID string) ([]entity.Membership, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	q.Set("active", "eq.true")
	q.Set("select", "*,office:offices(*)")
	var rows []entity.Membership
	if err := c.do(ctx, http.MethodGet, restPath("memberships", q), nil, &rows); err != nil {
		return nil, fmt.Errorf("consultar membresías: %w", err)
	}
	return rows, nil
}

// ClientsByOffice devuelve los clientes de la oficina.
func (c *Client) ClientsByOffice(ctx context.Context, officeID string) ([]entity.Client, error) {
	q := url.Values{}
	q.Set("office_id", "eq."+officeID)
	q.Set("select", "*")
	var rows []entity.Client
	if err := c.do(ctx, http.MethodGet, restPath("clients", q), nil, &rows); err != nil {
		return nil, fmt.Errorf("consultar clientes: %w", err)
	}
	return rows, nil
}

// LeadsByOffice devuelve los leads de la oficina.
func (c *Client) LeadsByOffice(ctx context.Context, officeID string) ([]entity.Lead, error) {
	q := url.Values{}
	q.Set("office_id", "eq."+officeID)
	q.Set("select", "*")
	var rows []entity.Lead
	if err := c.do(ctx, http.MethodGet, restPath("leads", q), nil, &rows); err != nil {
		return nil, fmt.Errorf("consultar leads: %w", err)
	}
	return rows, nil
}

// FeesByOffice devuelve las cuotas de la oficina.
func (c *Client) FeesByOffice(ctx context.Context, officeID string) ([]entity.Fee, error) {
	q := url.Values{}
	q.Set("office_id", "eq."+officeID)
	q.Set("select", "*")
	var rows []entity.Fee
	if err := c.do(ctx, http.MethodGet, restPath("fees", q), nil, &rows); err != nil {
		return nil, fmt.Errorf("consultar cuotas: %w", err)
	}
	return rows, nil
}

// InsertOffice inserta la oficina y devuelve la fila creada.
func (c *Client) InsertOffice(ctx context.Context, office entity.Office) (*entity.Office, error) {
	var rows []entity.Office
	if err := c.do(ctx, http.MethodPost, "/rest/v1/offices", office, &rows); err != nil {
		return nil, fmt.Errorf("insertar oficina: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insertar oficina: el proveedor no devolvió la fila creada")
	}
	return &rows[0], nil
}

// InsertMembership inserta la membresía y devuelve la fila creada.
func (c *Client) InsertMembership(ctx context.Context, m entity.Membership) (*entity.Membership, error) {
	// La oficina embebida es de solo lectura (join); no se envía al insertar.
	m.Office = nil
	var rows []entity.Membership
	if err := c.do(ctx, http.MethodPost, "/rest/v1/memberships", m, &rows); err != nil {
		return nil, fmt.Errorf("insertar membresía: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insertar membresía: el proveedor no devolvió la fila creada")
	}
	return &rows[0], nil
}

// DeleteOffice elimina una oficina (limpieza compensatoria de altas fallidas).
func (c *Client) DeleteOffice(ctx context.Context, officeID string) error {
	q := url.Values{}
	q.Set("id", "eq."+officeID)
	if err := c.do(ctx, http.MethodDelete, restPath("offices", q), nil, nil); err != nil {
		return fmt.Errorf("eliminar oficina: %w", err)
	}
	return nil
}
