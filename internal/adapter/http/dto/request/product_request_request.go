package request

import "mecanica_os/internal/usecase"

type RequestedProductRequest struct {
	ProductID string         `json:"product_id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Quantity  FlexibleNumber `json:"quantity" swaggertype:"string"`
}

// CreateProductRequestRequest lists the parts an order is waiting on.
// MarkPendingProduct also moves the order to pending_product.
type CreateProductRequestRequest struct {
	Products           []RequestedProductRequest `json:"products" binding:"required"`
	MarkPendingProduct bool                      `json:"mark_pending_product"`
}

func (r CreateProductRequestRequest) ToInput() usecase.CreateProductRequestInput {
	products := make([]usecase.RequestedProductInput, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, usecase.RequestedProductInput{
			ProductID: p.ProductID,
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  p.Quantity.String(),
		})
	}
	return usecase.CreateProductRequestInput{Products: products, MarkPendingProduct: r.MarkPendingProduct}
}
