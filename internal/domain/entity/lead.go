package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del embudo de un lead.
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadProposal  = "proposal"
	LeadWon       = "won"
	LeadLost      = "lost"
)

// Lead prospecto de cliente de una oficina.
type Lead struct {
	ID             string          `json:"id"`
	OfficeID       string          `json:"office_id"`
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	Status         string          `json:"status"` // new, contacted, proposal, won, lost
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Open indica si el lead sigue en el embudo (ni ganado ni perdido).
func (l Lead) Open() bool {
	return l.Status != LeadWon && l.Status != LeadLost
}
