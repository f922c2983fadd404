package stub

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// match evalúa filtros de igualdad columna→valor sobre un registro ya
// proyectado a map de columnas. Columnas desconocidas no coinciden nunca,
// igual que haría el backend real con una columna inexistente.
func match(row map[string]string, filters map[string]string) bool {
	for col, want := range filters {
		got, ok := row[col]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func officeCols(o entity.Office) map[string]string {
	return map[string]string{"id": o.ID, "name": o.Name, "nit": o.NIT, "active": strconv.FormatBool(o.Active)}
}

func membershipCols(m entity.Membership) map[string]string {
	return map[string]string{"id": m.ID, "user_id": m.UserID, "office_id": m.OfficeID, "role": m.Role, "active": strconv.FormatBool(m.Active)}
}

func clientCols(c entity.Client) map[string]string {
	return map[string]string{"id": c.ID, "office_id": c.OfficeID, "status": c.Status}
}

func leadCols(l entity.Lead) map[string]string {
	return map[string]string{"id": l.ID, "office_id": l.OfficeID, "status": l.Status}
}

func feeCols(f entity.Fee) map[string]string {
	return map[string]string{"id": f.ID, "office_id": f.OfficeID, "client_id": f.ClientID, "payment_status": f.PaymentStatus}
}

func profileCols(p entity.Profile) map[string]string {
	return map[string]string{"id": p.UserID}
}

// ListRows devuelve las filas de una tabla que pasan los filtros de igualdad.
// embedOffice embebe la oficina en las membresías (join relacional del
// proveedor). El segundo retorno es false si la tabla no existe.
func (s *Store) ListRows(table string, filters map[string]string, embedOffice bool) ([]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []any{}
	switch table {
	case "profiles":
		for _, p := range s.profiles {
			if match(profileCols(p), filters) {
				rows = append(rows, p)
			}
		}
	case "offices":
		for _, o := range s.offices {
			if match(officeCols(o), filters) {
				rows = append(rows, o)
			}
		}
	case "memberships":
		for _, m := range s.memberships {
			if !match(membershipCols(m), filters) {
				continue
			}
			if embedOffice {
				if o, ok := s.officeByIDLocked(m.OfficeID); ok {
					m.Office = &o
				}
			}
			rows = append(rows, m)
		}
	case "clients":
		for _, c := range s.clients {
			if match(clientCols(c), filters) {
				rows = append(rows, c)
			}
		}
	case "leads":
		for _, l := range s.leads {
			if match(leadCols(l), filters) {
				rows = append(rows, l)
			}
		}
	case "fees":
		for _, f := range s.fees {
			if match(feeCols(f), filters) {
				rows = append(rows, f)
			}
		}
	default:
		return nil, false
	}
	return rows, true
}

func (s *Store) officeByIDLocked(id string) (entity.Office, bool) {
	for _, o := range s.offices {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Office{}, false
}

// InsertOffice agrega la oficina, completando id y timestamps si faltan.
func (s *Store) InsertOffice(o entity.Office) entity.Office {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	s.mu.Lock()
	s.offices = append(s.offices, o)
	s.mu.Unlock()
	return o
}

// InsertMembership agrega la membresía, completando el id si falta.
func (s *Store) InsertMembership(m entity.Membership) entity.Membership {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.Office = nil
	s.mu.Lock()
	s.memberships = append(s.memberships, m)
	s.mu.Unlock()
	return m
}

// DeleteOffice elimina la oficina por id; devuelve cuántas filas quitó.
func (s *Store) DeleteOffice(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.offices[:0]
	removed := 0
	for _, o := range s.offices {
		if o.ID == id {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.offices = kept
	return removed
}
