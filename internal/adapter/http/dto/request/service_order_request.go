package request

import (
	"strings"
	"time"

	"mecanica_os/internal/domain/lineitem"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase"
)

// LineItemRequest is one row of the order form. Numeric fields may arrive as
// numbers or strings; malformed values are coerced by the aggregator.
type LineItemRequest struct {
	ProductID         string         `json:"product_id"`
	Code              string         `json:"code"`
	Name              string         `json:"name"`
	Quantity          FlexibleNumber `json:"quantity" swaggertype:"string"`
	SalePrice         FlexibleNumber `json:"sale_price" swaggertype:"string"`
	CostUnitPrice     FlexibleNumber `json:"cost_unit_price" swaggertype:"string"`
	GrossProfitMargin FlexibleNumber `json:"gross_profit_margin" swaggertype:"string"`
	ProviderIDs       []string       `json:"provider_ids"`
	Observations      string         `json:"observations"`
}

func (r LineItemRequest) ToRaw() lineitem.RawItem {
	return lineitem.RawItem{
		ProductID:         strings.TrimSpace(r.ProductID),
		Code:              r.Code,
		Name:              r.Name,
		Quantity:          r.Quantity.String(),
		SalePrice:         r.SalePrice.String(),
		CostUnitPrice:     r.CostUnitPrice.String(),
		GrossProfitMargin: r.GrossProfitMargin.String(),
		ProviderIDs:       r.ProviderIDs,
		Observations:      r.Observations,
	}
}

func ToRawItems(items []LineItemRequest) []lineitem.RawItem {
	raw := make([]lineitem.RawItem, 0, len(items))
	for _, it := range items {
		raw = append(raw, it.ToRaw())
	}
	return raw
}

type CreateServiceOrderRequest struct {
	Code      string            `json:"code" binding:"required"`
	ClientID  string            `json:"client_id" binding:"required"`
	VehicleID string            `json:"vehicle_id"`
	Status    string            `json:"status"`
	Deadline  *time.Time        `json:"deadline"`
	LineItems []LineItemRequest `json:"line_items"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		Code:      strings.TrimSpace(r.Code),
		ClientID:  strings.TrimSpace(r.ClientID),
		VehicleID: strings.TrimSpace(r.VehicleID),
		Status:    status.Code(strings.TrimSpace(r.Status)),
		Deadline:  r.Deadline,
		LineItems: ToRawItems(r.LineItems),
	}
}

// UpdateStatusRequest carries a canonical status code, e.g. "in_progress".
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DiscountRequest struct {
	Discount FlexibleNumber `json:"discount" swaggertype:"string"`
}

type ReplaceLineItemsRequest struct {
	LineItems []LineItemRequest `json:"line_items"`
}

type BindProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityRequest struct {
	Quantity FlexibleNumber `json:"quantity" swaggertype:"string"`
}

// Value coerces the quantity the same way line-item input is coerced.
func (r QuantityRequest) Value() int {
	return lineitem.ParseQuantity(r.Quantity.String())
}
