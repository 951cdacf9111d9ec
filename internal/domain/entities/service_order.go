package entities

import (
	"time"

	"mecanica_os/internal/domain/status"

	"github.com/shopspring/decimal"
)

// ServiceOrder is the O.S. (ordem de serviço) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - code is unique (enforced by the use case before Create)
//
// Monetary representation:
//   - TotalValueGeneral is always the sum of LineItems[i].TotalValue.
//   - TotalValueWithDiscount is present only when a discount was applied and is
//     then the value shown to the user.
type ServiceOrder struct {
	ID                     string           `json:"id"`
	Code                   string           `json:"code"`
	ClientID               string           `json:"client_id"`
	VehicleID              string           `json:"vehicle_id"`
	Status                 status.Code      `json:"status"`
	EntryDate              time.Time        `json:"entry_date"`
	Deadline               *time.Time       `json:"deadline,omitempty"`
	LineItems              []LineItem       `json:"line_items"`
	Discount               decimal.Decimal  `json:"discount"`
	TotalValueGeneral      decimal.Decimal  `json:"total_value_general"`
	TotalValueWithDiscount *decimal.Decimal `json:"total_value_with_discount,omitempty"`
	Paid                   bool             `json:"paid"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// LineItem is one product or service entry of an order.
// TotalValue is derived: SalePrice * Quantity.
type LineItem struct {
	ProductID         string          `json:"product_id,omitempty"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	CostUnitPrice     decimal.Decimal `json:"cost_unit_price"`
	GrossProfitMargin decimal.Decimal `json:"gross_profit_margin"`
	ProviderIDs       []string        `json:"provider_ids,omitempty"`
	Observations      string          `json:"observations,omitempty"`
	TotalValue        decimal.Decimal `json:"total_value"`
}

// AuthoritativeTotal is the value displayed and charged for the order.
func (o ServiceOrder) AuthoritativeTotal() decimal.Decimal {
	if o.TotalValueWithDiscount != nil {
		return *o.TotalValueWithDiscount
	}
	return o.TotalValueGeneral
}

// Locked orders no longer accept line-item edits.
func (o ServiceOrder) Locked() bool {
	return o.Status.Terminal()
}

// Overdue reports whether the deadline passed before now.
func (o ServiceOrder) Overdue(now time.Time) bool {
	return o.Deadline != nil && o.Deadline.Before(now)
}
