package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/lineitem"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceOrderNotFound      = fmt.Errorf("service order %w", domain.ErrNotFound)
	ErrCatalogProductNotFound    = fmt.Errorf("catalog product %w", domain.ErrNotFound)
	ErrServiceOrderAlreadyExists = errors.New("service order code already exists")
	ErrInvalidServiceOrderID     = errors.New("invalid service order id")
	ErrInvalidOrderCode          = errors.New("invalid service order code")
	ErrInvalidClientID           = errors.New("invalid client id")
	ErrInvalidDeadline           = errors.New("deadline before entry date")
	ErrInvalidDiscount           = errors.New("invalid discount")
	ErrOrderLocked               = errors.New("service order is locked")
)

// CreateServiceOrderInput carries the order form. Status defaults to request.
type CreateServiceOrderInput struct {
	Code      string
	ClientID  string
	VehicleID string
	Status    status.Code
	Deadline  *time.Time
	LineItems []lineitem.RawItem
}

// IServiceOrderUseCase edits stored orders. Every line-item edit re-establishes
// the order totals before persisting; orders in a terminal status reject edits
// with ErrOrderLocked.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, code status.Code) (entities.ServiceOrder, error)
	SetDiscount(ctx context.Context, id string, discount decimal.Decimal) (entities.ServiceOrder, error)

	ReplaceLineItems(ctx context.Context, id string, raw []lineitem.RawItem) (entities.ServiceOrder, error)
	AddBlankLineItem(ctx context.Context, id string) (entities.ServiceOrder, error)
	RemoveLineItem(ctx context.Context, id string, index int) (entities.ServiceOrder, error)
	BindCatalogProduct(ctx context.Context, id string, index int, productID string) (entities.ServiceOrder, error)
	SetLineItemQuantity(ctx context.Context, id string, index int, quantity int) (entities.ServiceOrder, error)

	DownloadPDF(ctx context.Context, id string) (content []byte, filename string, err error)
}

type ServiceOrderUseCase struct {
	repo     interfaces.IServiceOrderRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	products interfaces.ICatalogProductRepository
	pdf      interfaces.IOrderPDFGenerator
	log      *logger.Logger
	now      func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	products interfaces.ICatalogProductRepository,
	pdf interfaces.IOrderPDFGenerator,
	log *logger.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:     repo,
		clients:  clients,
		vehicles: vehicles,
		products: products,
		pdf:      pdf,
		log:      log.Component("service_order"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderCode
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.ServiceOrder{}, ErrInvalidClientID
	}
	st := in.Status
	if st == "" {
		st = status.Request
	}
	if err := status.Validate(st); err != nil {
		return entities.ServiceOrder{}, err
	}

	now := u.now()
	if in.Deadline != nil && in.Deadline.Before(now) {
		return entities.ServiceOrder{}, ErrInvalidDeadline
	}

	// code is unique
	if existing, err := u.repo.GetByCode(ctx, code); err != nil {
		return entities.ServiceOrder{}, err
	} else if existing.ID != "" {
		return entities.ServiceOrder{}, ErrServiceOrderAlreadyExists
	}

	o := entities.ServiceOrder{
		ID:        uuid.NewString(),
		Code:      code,
		ClientID:  clientID,
		VehicleID: strings.TrimSpace(in.VehicleID),
		Status:    st,
		EntryDate: now,
		Deadline:  in.Deadline,
		LineItems: lineitem.FromRaw(in.LineItems),
		Discount:  decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyTotals(&o)

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error().Err(err).Str("code", code).Msg("create service order failed")
		return entities.ServiceOrder{}, err
	}
	u.log.Info().Str("order_id", created.ID).Str("code", created.Code).Msg("service order created")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", id).Msg("delete service order failed")
		return err
	}
	if !deleted {
		return ErrServiceOrderNotFound
	}
	u.log.Info().Str("order_id", id).Msg("service order deleted")
	return nil
}

// UpdateStatus sets the status directly; there is no transition graph.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, code status.Code) (entities.ServiceOrder, error) {
	if err := status.Validate(code); err != nil {
		return entities.ServiceOrder{}, err
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == code {
		return o, nil
	}
	previous := o.Status
	o.Status = code
	o.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.Info().Str("order_id", o.ID).Str("from", string(previous)).Str("to", string(code)).Msg("service order status changed")
	return updated, nil
}

// SetDiscount stores an absolute discount amount. Zero removes the discount.
func (u *ServiceOrderUseCase) SetDiscount(ctx context.Context, id string, discount decimal.Decimal) (entities.ServiceOrder, error) {
	if discount.IsNegative() {
		return entities.ServiceOrder{}, ErrInvalidDiscount
	}
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		o.Discount = discount
		return nil
	})
}

func (u *ServiceOrderUseCase) ReplaceLineItems(ctx context.Context, id string, raw []lineitem.RawItem) (entities.ServiceOrder, error) {
	return u.editLineItems(ctx, id, func(_ []entities.LineItem) ([]entities.LineItem, error) {
		return lineitem.FromRaw(raw), nil
	})
}

func (u *ServiceOrderUseCase) AddBlankLineItem(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.editLineItems(ctx, id, func(items []entities.LineItem) ([]entities.LineItem, error) {
		return lineitem.AddBlankItem(items), nil
	})
}

func (u *ServiceOrderUseCase) RemoveLineItem(ctx context.Context, id string, index int) (entities.ServiceOrder, error) {
	return u.editLineItems(ctx, id, func(items []entities.LineItem) ([]entities.LineItem, error) {
		return lineitem.RemoveItem(items, index)
	})
}

func (u *ServiceOrderUseCase) BindCatalogProduct(ctx context.Context, id string, index int, productID string) (entities.ServiceOrder, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.ServiceOrder{}, ErrCatalogProductNotFound
	}
	return u.editLineItems(ctx, id, func(items []entities.LineItem) ([]entities.LineItem, error) {
		p, err := u.products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrCatalogProductNotFound
		}
		return lineitem.BindCatalogProduct(items, index, p)
	})
}

func (u *ServiceOrderUseCase) SetLineItemQuantity(ctx context.Context, id string, index int, quantity int) (entities.ServiceOrder, error) {
	return u.editLineItems(ctx, id, func(items []entities.LineItem) ([]entities.LineItem, error) {
		return lineitem.SetQuantity(items, index, quantity)
	})
}

func (u *ServiceOrderUseCase) editLineItems(ctx context.Context, id string, edit func([]entities.LineItem) ([]entities.LineItem, error)) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		items, err := edit(o.LineItems)
		if err != nil {
			return err
		}
		o.LineItems, _ = lineitem.Normalize(items)
		return nil
	})
}

// mutate loads the order, rejects locked orders, applies fn, recomputes the
// totals and persists.
func (u *ServiceOrderUseCase) mutate(ctx context.Context, id string, fn func(*entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Locked() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: status %s", ErrOrderLocked, o.Status)
	}
	if err := fn(&o); err != nil {
		return entities.ServiceOrder{}, err
	}
	applyTotals(&o)
	o.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", o.ID).Msg("update service order failed")
		return entities.ServiceOrder{}, err
	}
	u.log.Debug().Str("order_id", o.ID).Int("line_items", len(o.LineItems)).Str("total", o.TotalValueGeneral.StringFixed(2)).Msg("service order updated")
	return updated, nil
}

// applyTotals derives TotalValueGeneral from the line items and the
// discounted total from Discount, floored at zero.
func applyTotals(o *entities.ServiceOrder) {
	o.TotalValueGeneral = lineitem.Total(o.LineItems)
	if !o.Discount.IsPositive() {
		o.TotalValueWithDiscount = nil
		return
	}
	v := o.TotalValueGeneral.Sub(o.Discount)
	if v.IsNegative() {
		v = decimal.Zero
	}
	o.TotalValueWithDiscount = &v
}

// DownloadPDF renders the order document. Missing client or vehicle records do
// not prevent rendering.
func (u *ServiceOrderUseCase) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var client entities.Client
	if o.ClientID != "" {
		if client, err = u.clients.GetByID(ctx, o.ClientID); err != nil {
			u.log.Warn().Err(err).Str("order_id", o.ID).Msg("client lookup failed for pdf")
			client = entities.Client{}
		}
	}
	var vehicle entities.Vehicle
	if o.VehicleID != "" {
		if vehicle, err = u.vehicles.GetByID(ctx, o.VehicleID); err != nil {
			u.log.Warn().Err(err).Str("order_id", o.ID).Msg("vehicle lookup failed for pdf")
			vehicle = entities.Vehicle{}
		}
	}

	content, err := u.pdf.GenerateOrderPDF(ctx, o, client, vehicle)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", o.ID).Msg("pdf generation failed")
		return nil, "", err
	}
	return content, PDFFilename(o.Code), nil
}

// PDFFilename is OS_<code>.pdf with path separators removed.
func PDFFilename(code string) string {
	code = strings.NewReplacer("/", "_", "\\", "_", "\"", "").Replace(strings.TrimSpace(code))
	return fmt.Sprintf("OS_%s.pdf", code)
}
