package entity

import "time"

// Roles válidos de una membresía oficina↔usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Office representa una oficina (tenant) del sistema. Cada oficina es dueña
// de sus clientes, leads y cuotas; los usuarios acceden vía Membership.
type Office struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"` // identificación tributaria, con o sin dígito de verificación
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership asocia exactamente un usuario con exactamente una oficina y un rol.
// Solo las membresías con Active=true cuentan para la selección de oficina.
type Membership struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	OfficeID string `json:"office_id"`
	Role     string `json:"role"` // admin | user
	Active   bool   `json:"active"`

	// Office viene embebida cuando la consulta hace join con offices.
	Office *Office `json:"office,omitempty"`
}

// OfficeName devuelve el nombre de la oficina embebida, o el ID como respaldo
// si el join no la trajo.
func (m Membership) OfficeName() string {
	if m.Office != nil && m.Office.Name != "" {
		return m.Office.Name
	}
	return m.OfficeID
}
