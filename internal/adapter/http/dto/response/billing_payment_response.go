package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
)

type BillingPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ID             string    `json:"id"`
	ServiceOrderID string    `json:"service_order_id"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:      p.ID,
		ID:             p.ID,
		ServiceOrderID: p.ServiceOrderID,
		Amount:         p.Amount.InexactFloat64(),
		PaymentDate:    p.Date,
		Date:           p.Date,
		Status:         string(p.Status),
		MPPayloadRaw:   string(p.MPPayloadRaw),
		MPPayload:      p.MPPayload,
	}
}

func FromBillingPayments(ps []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
