// Package stub emula al proveedor remoto de datos/auth para desarrollo local:
// auth compatible GoTrue y datos compatibles PostgREST sobre tablas en
// memoria. Es una herramienta de desarrollo, no un motor de persistencia.
package stub

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// account usuario del stub de auth; el hash nunca sale por la API.
type account struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
}

// Store tablas en memoria del stub. Fiber atiende en paralelo, de ahí el RWMutex.
type Store struct {
	mu          sync.RWMutex
	accounts    map[string]*account // por email
	profiles    []entity.Profile
	offices     []entity.Office
	memberships []entity.Membership
	clients     []entity.Client
	leads       []entity.Lead
	fees        []entity.Fee
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{accounts: map[string]*account{}}
}

// CreateAccount registra una cuenta con su perfil; false si el email ya existe.
func (s *Store) CreateAccount(email, password, fullName string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	if _, exists := s.accounts[key]; exists {
		return nil, false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false
	}
	acc := &account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	s.accounts[key] = acc
	s.profiles = append(s.profiles, entity.Profile{UserID: acc.ID, FullName: fullName})
	return acc, true
}

// Authenticate verifica email/contraseña.
func (s *Store) Authenticate(email, password string) (*account, bool) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, false
	}
	return acc, true
}

// AccountByID busca una cuenta por su id.
func (s *Store) AccountByID(id string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return nil, false
}

// Seed carga datos de demostración: una cuenta demo con dos oficinas y
// colecciones variadas (incluida una cuota vencida para ejercitar las
// acciones del dashboard).
func (s *Store) Seed() {
	acc, ok := s.CreateAccount("demo@officedesk.dev", "demo1234", "Dora Demo")
	if !ok {
		return
	}

	now := time.Now()
	acme := entity.Office{
		ID: uuid.New().String(), Name: "Acme Asesores", NIT: "900123456-7",
		Address: "Cra 7 # 12-34", Phone: "6015551234", Email: "contacto@acme.co",
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	norte := entity.Office{
		ID: uuid.New().String(), Name: "Bufete Norte", NIT: "901987654-3",
		Address: "Cl 100 # 8-20", Phone: "6015559876", Email: "info@bufetenorte.co",
		Active: true, CreatedAt: now, UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.offices = append(s.offices, acme, norte)
	s.memberships = append(s.memberships,
		entity.Membership{ID: uuid.New().String(), UserID: acc.ID, OfficeID: acme.ID, Role: entity.RoleAdmin, Active: true},
		entity.Membership{ID: uuid.New().String(), UserID: acc.ID, OfficeID: norte.ID, Role: entity.RoleUser, Active: true},
	)
	s.clients = append(s.clients,
		entity.Client{ID: uuid.New().String(), OfficeID: acme.ID, Name: "Panadería La Espiga", Email: "espiga@mail.co", Status: entity.ClientActive, CreatedAt: now},
		entity.Client{ID: uuid.New().String(), OfficeID: acme.ID, Name: "Ferretería El Tornillo", Email: "tornillo@mail.co", Status: entity.ClientActive, CreatedAt: now},
		entity.Client{ID: uuid.New().String(), OfficeID: acme.ID, Name: "Textiles Rueda", Email: "rueda@mail.co", Status: entity.ClientInactive, CreatedAt: now},
	)
	s.leads = append(s.leads,
		entity.Lead{ID: uuid.New().String(), OfficeID: acme.ID, Name: "Café Aroma", Contact: "310555", Status: entity.LeadContacted, EstimatedValue: decimal.RequireFromString("350000"), CreatedAt: now},
		entity.Lead{ID: uuid.New().String(), OfficeID: acme.ID, Name: "Droguería Vida", Contact: "311222", Status: entity.LeadWon, EstimatedValue: decimal.RequireFromString("120000"), CreatedAt: now},
	)
	s.fees = append(s.fees,
		entity.Fee{ID: uuid.New().String(), OfficeID: acme.ID, ClientID: s.clients[0].ID, Concept: "Contabilidad mensual", MonthlyValue: decimal.RequireFromString("150.00"), PaymentStatus: entity.FeePaid, DueDay: 5, CreatedAt: now},
		entity.Fee{ID: uuid.New().String(), OfficeID: acme.ID, ClientID: s.clients[1].ID, Concept: "Nómina", MonthlyValue: decimal.RequireFromString("200.00"), PaymentStatus: entity.FeeOverdue, DueDay: 10, CreatedAt: now},
	)
}
