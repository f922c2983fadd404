package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem de acción del dashboard.
const (
	ActionOverdueFees = "overdue_fees"
	ActionNone        = "none"
)

// ActionItemDTO línea de acción derivada de los agregados.
type ActionItemDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DashboardSummaryDTO agregados del dashboard para la oficina actual.
// Se recalcula en cada activación del dashboard; nunca se cachea más allá
// del intervalo de refresco configurado.
type DashboardSummaryDTO struct {
	ActiveClients  int             `json:"active_clients"`  // clientes con status "active"
	OpenLeads      int             `json:"open_leads"`      // leads fuera de {won, lost}
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"` // suma de monthly_value de todas las cuotas
	OverdueFees    int             `json:"overdue_fees"`    // cuotas con payment_status "overdue"

	// Actions contiene la línea de cuotas vencidas si OverdueFees > 0,
	// o exactamente un placeholder neutro; nunca ambos.
	Actions []ActionItemDTO `json:"actions"`

	GeneratedAt time.Time `json:"generated_at"`
}
