package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// BillingPayment is a payment made for a completed service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_order_id-index): service_order_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for audit.
//   - MPPayload is the parsed representation.
type BillingPayment struct {
	ID             string          `json:"id"`
	ServiceOrderID string          `json:"service_order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Status         PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
