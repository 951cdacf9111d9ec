package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"
)

// Client, vehicle and catalog records are read-only here. A zero value (empty
// ID) means not found.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}

type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
}

type ICatalogProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.CatalogProduct, error)
}
