package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the "cria e processa pagamento" route.
//
// `mp_payload` is forwarded to Mercado Pago; amount and description are always
// taken from the service order.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
