package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/lineitem"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/google/uuid"
)

var ErrInvalidProductRequest = errors.New("invalid product request")

// RequestedProductInput is one row of the request form. Quantity is coerced
// like a line-item quantity.
type RequestedProductInput struct {
	ProductID string
	Code      string
	Name      string
	Quantity  string
}

type CreateProductRequestInput struct {
	Products []RequestedProductInput
	// MarkPendingProduct moves the order to pending_product once the request
	// is stored.
	MarkPendingProduct bool
}

// IProductRequestUseCase records parts a service order is waiting on.
type IProductRequestUseCase interface {
	Create(ctx context.Context, orderID string, in CreateProductRequestInput) (entities.ProductRequest, error)
	ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.ProductRequest, error)
}

type ProductRequestUseCase struct {
	repo     interfaces.IProductRequestRepository
	orders   interfaces.IServiceOrderRepository
	products interfaces.ICatalogProductRepository
	log      *logger.Logger
	now      func() time.Time
}

var _ IProductRequestUseCase = (*ProductRequestUseCase)(nil)

func NewProductRequestUseCase(
	repo interfaces.IProductRequestRepository,
	orders interfaces.IServiceOrderRepository,
	products interfaces.ICatalogProductRepository,
	log *logger.Logger,
) *ProductRequestUseCase {
	return &ProductRequestUseCase{
		repo:     repo,
		orders:   orders,
		products: products,
		log:      log.Component("product_request"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProductRequestUseCase) Create(ctx context.Context, orderID string, in CreateProductRequestInput) (entities.ProductRequest, error) {
	if len(in.Products) == 0 {
		return entities.ProductRequest{}, fmt.Errorf("%w: no products", ErrInvalidProductRequest)
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ProductRequest{}, err
	}
	if order.Locked() {
		return entities.ProductRequest{}, fmt.Errorf("%w: status %s", ErrOrderLocked, order.Status)
	}

	products := make([]entities.RequestedProduct, 0, len(in.Products))
	for i, p := range in.Products {
		rp, err := u.resolve(ctx, p)
		if err != nil {
			return entities.ProductRequest{}, err
		}
		if rp.Name == "" {
			return entities.ProductRequest{}, fmt.Errorf("%w: product %d has no name", ErrInvalidProductRequest, i)
		}
		products = append(products, rp)
	}

	now := u.now()
	created, err := u.repo.Create(ctx, entities.ProductRequest{
		ID:               uuid.NewString(),
		ServiceOrderID:   order.ID,
		ServiceOrderCode: order.Code,
		Status:           entities.ProductRequestPending,
		Products:         products,
		CreatedAt:        now,
	})
	if err != nil {
		u.log.Error().Err(err).Str("order_id", order.ID).Msg("create product request failed")
		return entities.ProductRequest{}, err
	}
	u.log.Info().Str("order_id", order.ID).Str("request_id", created.ID).Int("products", len(products)).Msg("product request created")

	if in.MarkPendingProduct && order.Status != status.PendingProduct {
		previous := order.Status
		order.Status = status.PendingProduct
		order.UpdatedAt = now
		if _, err := u.orders.Update(ctx, order); err != nil {
			u.log.Error().Err(err).Str("order_id", order.ID).Str("request_id", created.ID).Msg("request stored but status not changed")
			return created, err
		}
		u.log.Info().Str("order_id", order.ID).Str("from", string(previous)).Str("to", string(order.Status)).Msg("service order status changed")
	}
	return created, nil
}

func (u *ProductRequestUseCase) ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.ProductRequest, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByServiceOrderID(ctx, order.ID)
}

func (u *ProductRequestUseCase) loadOrder(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

// resolve fills name and code from the catalog when the row was picked from
// it. Typed values win over catalog values.
func (u *ProductRequestUseCase) resolve(ctx context.Context, p RequestedProductInput) (entities.RequestedProduct, error) {
	rp := entities.RequestedProduct{
		ProductID: strings.TrimSpace(p.ProductID),
		Code:      strings.TrimSpace(p.Code),
		Name:      strings.TrimSpace(p.Name),
		Quantity:  lineitem.ParseQuantity(p.Quantity),
	}
	if rp.ProductID == "" || (rp.Name != "" && rp.Code != "") {
		return rp, nil
	}
	product, err := u.products.GetByID(ctx, rp.ProductID)
	if err != nil {
		return entities.RequestedProduct{}, err
	}
	if product.ID == "" {
		return entities.RequestedProduct{}, fmt.Errorf("%w: %s", ErrCatalogProductNotFound, rp.ProductID)
	}
	if rp.Name == "" {
		rp.Name = product.Name
	}
	if rp.Code == "" {
		rp.Code = product.Code
	}
	return rp, nil
}
