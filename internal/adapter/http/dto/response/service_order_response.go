package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
)

// Money leaves the API as JSON numbers; the decimal values stay internal.

type LineItemResponse struct {
	ProductID         string   `json:"product_id,omitempty"`
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	SalePrice         float64  `json:"sale_price"`
	CostUnitPrice     float64  `json:"cost_unit_price"`
	GrossProfitMargin float64  `json:"gross_profit_margin"`
	ProviderIDs       []string `json:"provider_ids,omitempty"`
	Observations      string   `json:"observations,omitempty"`
	TotalValue        float64  `json:"total_value"`
}

type ServiceOrderResponse struct {
	ID                     string             `json:"id"`
	Code                   string             `json:"code"`
	OSNumber               string             `json:"os_numero"`
	ClientID               string             `json:"client_id"`
	VehicleID              string             `json:"vehicle_id,omitempty"`
	Status                 string             `json:"status"`
	StatusLabel            string             `json:"status_label"`
	EntryDate              time.Time          `json:"entry_date"`
	Deadline               *time.Time         `json:"deadline,omitempty"`
	LineItems              []LineItemResponse `json:"line_items"`
	Discount               float64            `json:"discount"`
	TotalValueGeneral      float64            `json:"total_value_general"`
	TotalValueWithDiscount *float64           `json:"total_value_with_discount,omitempty"`
	Total                  float64            `json:"total"`
	Paid                   bool               `json:"paid"`
	Locked                 bool               `json:"locked"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:                o.ID,
		Code:              o.Code,
		OSNumber:          usecase.OSNumber(o.Code),
		ClientID:          o.ClientID,
		VehicleID:         o.VehicleID,
		Status:            string(o.Status),
		StatusLabel:       o.Status.Label(),
		EntryDate:         o.EntryDate,
		Deadline:          o.Deadline,
		LineItems:         make([]LineItemResponse, 0, len(o.LineItems)),
		Discount:          o.Discount.InexactFloat64(),
		TotalValueGeneral: o.TotalValueGeneral.InexactFloat64(),
		Total:             o.AuthoritativeTotal().InexactFloat64(),
		Paid:              o.Paid,
		Locked:            o.Locked(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.TotalValueWithDiscount != nil {
		v := o.TotalValueWithDiscount.InexactFloat64()
		res.TotalValueWithDiscount = &v
	}
	for _, it := range o.LineItems {
		res.LineItems = append(res.LineItems, LineItemResponse{
			ProductID:         it.ProductID,
			Code:              it.Code,
			Name:              it.Name,
			Quantity:          it.Quantity,
			SalePrice:         it.SalePrice.InexactFloat64(),
			CostUnitPrice:     it.CostUnitPrice.InexactFloat64(),
			GrossProfitMargin: it.GrossProfitMargin.InexactFloat64(),
			ProviderIDs:       it.ProviderIDs,
			Observations:      it.Observations,
			TotalValue:        it.TotalValue.InexactFloat64(),
		})
	}
	return res
}

// EnrichedOrderResponse is one row of the order list.
type EnrichedOrderResponse struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	OSNumber           string     `json:"os_numero"`
	ClientName         string     `json:"cliente_nome"`
	VehicleDescription string     `json:"veiculo_descricao"`
	VehiclePlate       string     `json:"placa"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"status_label"`
	EntryDate          time.Time  `json:"data_entrada"`
	Deadline           *time.Time `json:"data_finalizacao,omitempty"`
	Value              float64    `json:"valor"`
	Paid               bool       `json:"pago"`
}

func FromEnrichedOrders(orders []entities.EnrichedOrder) []EnrichedOrderResponse {
	out := make([]EnrichedOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, EnrichedOrderResponse{
			ID:                 o.ID,
			Code:               o.Code,
			OSNumber:           o.OSNumber,
			ClientName:         o.ClientName,
			VehicleDescription: o.VehicleDescription,
			VehiclePlate:       o.VehiclePlate,
			Status:             string(o.Status),
			StatusLabel:        o.StatusLabel,
			EntryDate:          o.EntryDate,
			Deadline:           o.Deadline,
			Value:              o.Value.InexactFloat64(),
			Paid:               o.Paid,
		})
	}
	return out
}
