package entity

import "time"

// Estados válidos de un cliente.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
	ClientArchived = "archived"
)

// Client representa un cliente gestionado por una oficina.
type Client struct {
	ID        string    `json:"id"`
	OfficeID  string    `json:"office_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"` // active, inactive, archived
	CreatedAt time.Time `json:"created_at"`
}
