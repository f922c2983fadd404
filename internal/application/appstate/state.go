// Package appstate contiene el estado compartido de la aplicación cliente:
// sesión actual, oficina activa, rol y la lista de membresías del usuario.
//
// Es un objeto de contexto explícito, no un global: se inyecta a quien lo
// necesite y solo muta a través de los puntos de entrada de cada transición
// (SetSession, SetMemberships, SelectOffice, Reset). Todas las mutaciones
// ocurren en el bucle de actualización de la interfaz (un solo goroutine);
// las operaciones asíncronas reciben copias de valores, nunca el State.
package appstate

import (
	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// State estado de la aplicación. Invariantes:
//   - la oficina actual, si existe, es un elemento de la lista de membresías;
//   - el rol actual es el rol de esa membresía;
//   - Reset deja todo en cero (logout).
type State struct {
	session     *entity.Session
	office      *entity.Office
	role        string
	memberships []entity.Membership

	// generación de cargas asíncronas: una carga cuyo token quedó superado
	// descarta su resultado al llegar en vez de renderizarlo
	generation uint64
}

// New crea un estado vacío.
func New() *State {
	return &State{}
}

// SetSession registra la sesión resuelta (transición del Session Resolver).
func (s *State) SetSession(sess *entity.Session) {
	s.session = sess
}

// Session devuelve la sesión actual, o nil si no hay.
func (s *State) Session() *entity.Session {
	return s.session
}

// SetDisplayName rellena el nombre visible de la sesión desde el perfil.
// No hace nada si no hay sesión o el nombre viene vacío.
func (s *State) SetDisplayName(name string) {
	if s.session == nil || name == "" {
		return
	}
	s.session.DisplayName = name
}

// SetMemberships reemplaza la lista de membresías (transición del Workspace
// Loader). Si la oficina actual ya no pertenece a la lista nueva, se
// desselecciona para conservar el invariante.
func (s *State) SetMemberships(ms []entity.Membership) {
	s.memberships = ms
	if s.office == nil {
		return
	}
	for _, m := range ms {
		if m.OfficeID == s.office.ID {
			s.role = m.Role
			if m.Office != nil {
				s.office = m.Office
			}
			return
		}
	}
	s.office = nil
	s.role = ""
}

// Memberships devuelve la lista cargada, en el orden que entregó el proveedor.
func (s *State) Memberships() []entity.Membership {
	return s.memberships
}

// SelectOffice fija la oficina activa y su rol (transición del selector).
// La oficina debe ser un elemento de la lista de membresías.
func (s *State) SelectOffice(officeID string) error {
	for _, m := range s.memberships {
		if m.OfficeID == officeID {
			if m.Office != nil {
				s.office = m.Office
			} else {
				s.office = &entity.Office{ID: m.OfficeID}
			}
			s.role = m.Role
			return nil
		}
	}
	return domain.ErrOfficeNotInList
}

// CurrentOffice devuelve la oficina activa, o nil.
func (s *State) CurrentOffice() *entity.Office {
	return s.office
}

// CurrentRole devuelve el rol en la oficina activa, o "" si no hay oficina.
func (s *State) CurrentRole() string {
	return s.role
}

// Reset limpia sesión, oficina, rol y membresías (transición de logout).
// No toca el contador de generaciones: las cargas en vuelo de la sesión
// anterior deben seguir quedando superadas.
func (s *State) Reset() {
	s.session = nil
	s.office = nil
	s.role = ""
	s.memberships = nil
}

// NextGeneration inicia una nueva carga asíncrona y supera a las anteriores.
func (s *State) NextGeneration() uint64 {
	s.generation++
	return s.generation
}

// IsCurrent indica si el token de carga sigue vigente.
func (s *State) IsCurrent(gen uint64) bool {
	return gen == s.generation
}
