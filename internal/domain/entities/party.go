package entities

import "github.com/shopspring/decimal"

// Client and Vehicle records are owned by the registration service; orders
// only reference them by id.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Vehicle struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id,omitempty"`
	Name         string `json:"name"`
	LicensePlate string `json:"license_plate"`
}

// CatalogProduct is a product of the parts catalog that can be bound to a
// line item.
type CatalogProduct struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	CostUnitPrice     decimal.Decimal `json:"cost_unit_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	GrossProfitMargin decimal.Decimal `json:"gross_profit_margin"`
	ProviderIDs       []string        `json:"provider_ids,omitempty"`
	Observations      string          `json:"observations,omitempty"`
}
