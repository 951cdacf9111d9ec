package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
)

type RequestedProductResponse struct {
	ProductID string `json:"product_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type ProductRequestResponse struct {
	ID               string                     `json:"id"`
	ServiceOrderID   string                     `json:"service_order_id"`
	ServiceOrderCode string                     `json:"service_order_code"`
	Status           string                     `json:"status"`
	Products         []RequestedProductResponse `json:"products"`
	CreatedAt        time.Time                  `json:"created_at"`
}

func FromProductRequest(r entities.ProductRequest) ProductRequestResponse {
	products := make([]RequestedProductResponse, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, RequestedProductResponse(p))
	}
	return ProductRequestResponse{
		ID:               r.ID,
		ServiceOrderID:   r.ServiceOrderID,
		ServiceOrderCode: r.ServiceOrderCode,
		Status:           string(r.Status),
		Products:         products,
		CreatedAt:        r.CreatedAt,
	}
}

func FromProductRequests(rs []entities.ProductRequest) []ProductRequestResponse {
	out := make([]ProductRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromProductRequest(r))
	}
	return out
}

// StatusFilterResponse is one option of the status search field.
type StatusFilterResponse struct {
	Filter string `json:"filter"`
	Status string `json:"status,omitempty"`
	Label  string `json:"label"`
}

// StatusFilters lists FilterAll first, then every code in workflow order.
func StatusFilters() []StatusFilterResponse {
	out := []StatusFilterResponse{{Filter: status.FilterAll, Label: "Todos"}}
	for _, c := range status.All() {
		l, ok := status.FilterLabelOf(c)
		if !ok {
			continue
		}
		out = append(out, StatusFilterResponse{Filter: l, Status: string(c), Label: c.Label()})
	}
	return out
}
