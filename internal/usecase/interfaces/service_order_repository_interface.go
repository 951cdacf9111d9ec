package interfaces

import (
	"context"
	"time"

	"mecanica_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence of service orders.
//
// Lookups return a zero ServiceOrder (empty ID) when the order does not exist;
// Delete reports whether something was removed.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error)
	ListWithDeadlineBefore(ctx context.Context, before time.Time) ([]entities.ServiceOrder, error)
	ListByEntryDateRange(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
