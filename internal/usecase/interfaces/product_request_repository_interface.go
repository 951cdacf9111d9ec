package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"
)

type IProductRequestRepository interface {
	Create(ctx context.Context, r entities.ProductRequest) (entities.ProductRequest, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ProductRequest, error)
}
