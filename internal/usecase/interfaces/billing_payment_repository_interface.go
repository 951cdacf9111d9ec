package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.BillingPayment, error)
}
