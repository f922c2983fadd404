package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una cuota.
const (
	FeePending   = "pending"
	FeePaid      = "paid"
	FeeOverdue   = "overdue"
	FeeCancelled = "cancelled"
)

// Fee cuota recurrente que una oficina cobra a un cliente.
// MonthlyValue llega del proveedor como string decimal ("150.00").
type Fee struct {
	ID            string          `json:"id"`
	OfficeID      string          `json:"office_id"`
	ClientID      string          `json:"client_id"`
	Concept       string          `json:"concept"`
	MonthlyValue  decimal.Decimal `json:"monthly_value"`
	PaymentStatus string          `json:"payment_status"` // pending, paid, overdue, cancelled
	DueDay        int             `json:"due_day"` // día del mes en que vence (1-28)
	CreatedAt     time.Time       `json:"created_at"`
}
