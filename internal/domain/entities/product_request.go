package entities

import "time"

// ProductRequestStatus tracks a request for parts the shop does not have.
type ProductRequestStatus string

const (
	ProductRequestPending ProductRequestStatus = "pending"
)

// RequestedProduct is one line of a product request. ProductID and Code are
// set when the product was picked from the catalog.
type RequestedProduct struct {
	ProductID string `json:"product_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ProductRequest asks purchasing for the parts a service order is waiting on.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_order_id-index): service_order_id
type ProductRequest struct {
	ID               string               `json:"id"`
	ServiceOrderID   string               `json:"service_order_id"`
	ServiceOrderCode string               `json:"service_order_code"`
	Status           ProductRequestStatus `json:"status"`
	Products         []RequestedProduct   `json:"products"`
	CreatedAt        time.Time            `json:"created_at"`
}
