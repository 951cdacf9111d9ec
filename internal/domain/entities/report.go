package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBilling aggregates the orders that entered during one month.
// Canceled orders are excluded.
type MonthlyBilling struct {
	Month         string          `json:"month"` // YYYY-MM
	OrderCount    int             `json:"order_count"`
	TotalGeneral  decimal.Decimal `json:"total_general"`
	TotalProducts decimal.Decimal `json:"total_products"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalOpen     decimal.Decimal `json:"total_open"`
}

// OperationalReport is the content of the daily e-mail.
type OperationalReport struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	NearDeadline  []EnrichedOrder `json:"near_deadline"`
	PastDeadline  []EnrichedOrder `json:"past_deadline"`
	MonthlyReport MonthlyBilling  `json:"monthly_billing"`
}
