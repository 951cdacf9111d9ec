package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Placeholders shown when a reference cannot be resolved.
const (
	PlaceholderAbsent          = "—"
	PlaceholderClientNotFound  = "Cliente não encontrado"
	PlaceholderClientNoName    = "Sem nome"
	PlaceholderVehicleNotFound = "Veículo não encontrado"
)

const (
	defaultLookupConcurrency = 8
	filterDateLayout         = "2006-01-02"
)

// FilterInput is the search form as submitted. Empty fields are not applied.
type FilterInput struct {
	ClientID          string
	Date              string
	Code              string
	StatusFilterLabel string
	PaidFilter        string
}

// IOrderQueryUseCase lists orders for display.
//
// Enrichment never fails the list: a client or vehicle that cannot be resolved
// is replaced by a placeholder and the order is kept in its original position.
type IOrderQueryUseCase interface {
	BuildFilter(in FilterInput) (entities.OrderFilter, error)
	FetchEnrichedOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.EnrichedOrder, error)
	Enrich(ctx context.Context, orders []entities.ServiceOrder) []entities.EnrichedOrder
}

type OrderQueryUseCase struct {
	orders      interfaces.IServiceOrderRepository
	clients     interfaces.IClientRepository
	vehicles    interfaces.IVehicleRepository
	metrics     interfaces.IOperationalMetrics
	log         *logger.Logger
	concurrency int
}

var _ IOrderQueryUseCase = (*OrderQueryUseCase)(nil)

// NewOrderQueryUseCase caps concurrent lookups at concurrency (default 8 when
// not positive). metrics may be nil.
func NewOrderQueryUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	metrics interfaces.IOperationalMetrics,
	log *logger.Logger,
	concurrency int,
) *OrderQueryUseCase {
	if concurrency <= 0 {
		concurrency = defaultLookupConcurrency
	}
	return &OrderQueryUseCase{
		orders:      orders,
		clients:     clients,
		vehicles:    vehicles,
		metrics:     metrics,
		log:         log.Component("order_query"),
		concurrency: concurrency,
	}
}

func (u *OrderQueryUseCase) BuildFilter(in FilterInput) (entities.OrderFilter, error) {
	f := entities.OrderFilter{}

	if v := strings.TrimSpace(in.ClientID); v != "" {
		f[entities.FilterClientID] = v
	}
	if v := strings.TrimSpace(in.Date); v != "" {
		if _, err := time.Parse(filterDateLayout, v); err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidFilter, v)
		}
		f[entities.FilterDate] = v
	}
	if v := strings.TrimSpace(in.Code); v != "" {
		f[entities.FilterCode] = v
	}

	code, ok, err := status.CodeFromFilterLabel(in.StatusFilterLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	if ok {
		f[entities.FilterStatus] = string(code)
	}

	switch v := strings.ToLower(strings.TrimSpace(in.PaidFilter)); v {
	case "", status.FilterAll:
	case entities.PaidYes, entities.PaidNo:
		f[entities.FilterPaid] = v
	default:
		return nil, fmt.Errorf("%w: paid must be %q or %q, got %q", ErrInvalidFilter, entities.PaidYes, entities.PaidNo, in.PaidFilter)
	}

	return f, nil
}

func (u *OrderQueryUseCase) FetchEnrichedOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.EnrichedOrder, error) {
	orders, err := u.orders.List(ctx, filter)
	if err != nil {
		u.log.Error().Err(err).Interface("filter", filter).Msg("list service orders failed")
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	u.log.Debug().Int("count", len(orders)).Interface("filter", filter).Msg("service orders listed")
	return u.Enrich(ctx, orders), nil
}

// Enrich resolves display data for every order, at most u.concurrency orders
// at a time. The result has the same length and order as the input.
func (u *OrderQueryUseCase) Enrich(ctx context.Context, orders []entities.ServiceOrder) []entities.EnrichedOrder {
	out := make([]entities.EnrichedOrder, len(orders))
	if len(orders) == 0 {
		return out
	}

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, o := range orders {
		g.Go(func() error {
			out[i] = u.enrichOne(ctx, o)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (u *OrderQueryUseCase) enrichOne(ctx context.Context, o entities.ServiceOrder) entities.EnrichedOrder {
	e := entities.EnrichedOrder{
		ID:          o.ID,
		Code:        o.Code,
		OSNumber:    OSNumber(o.Code),
		Status:      o.Status,
		StatusLabel: status.LabelOf(o.Status),
		EntryDate:   o.EntryDate,
		Deadline:    o.Deadline,
		Value:       o.AuthoritativeTotal(),
		Paid:        o.Paid,
	}
	e.ClientName = u.clientName(ctx, o)
	e.VehicleDescription, e.VehiclePlate = u.vehicleDisplay(ctx, o)
	return e
}

func (u *OrderQueryUseCase) clientName(ctx context.Context, o entities.ServiceOrder) string {
	id := strings.TrimSpace(o.ClientID)
	if id == "" {
		return PlaceholderAbsent
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		u.lookupFailed("client", o.ID, id, fmt.Errorf("%w: %w", domain.ErrLookupFailure, err))
		return PlaceholderClientNotFound
	}
	if c.ID == "" {
		u.lookupFailed("client", o.ID, id, domain.ErrNotFound)
		return PlaceholderClientNotFound
	}
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return PlaceholderClientNoName
}

func (u *OrderQueryUseCase) vehicleDisplay(ctx context.Context, o entities.ServiceOrder) (description, plate string) {
	id := strings.TrimSpace(o.VehicleID)
	if id == "" {
		return PlaceholderAbsent, PlaceholderAbsent
	}
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		u.lookupFailed("vehicle", o.ID, id, fmt.Errorf("%w: %w", domain.ErrLookupFailure, err))
		return PlaceholderVehicleNotFound, PlaceholderAbsent
	}
	if v.ID == "" {
		u.lookupFailed("vehicle", o.ID, id, domain.ErrNotFound)
		return PlaceholderVehicleNotFound, PlaceholderAbsent
	}
	return orPlaceholder(v.Name), orPlaceholder(v.LicensePlate)
}

func (u *OrderQueryUseCase) lookupFailed(kind, orderID, refID string, err error) {
	u.log.Warn().Err(err).Str("kind", kind).Str("order_id", orderID).Str("ref_id", refID).Msg("lookup replaced by placeholder")
	if u.metrics != nil {
		u.metrics.ObserveLookupFailure(kind)
	}
}

// OSNumber extracts the number part of an order code: "OS-0042" -> "0042".
func OSNumber(code string) string {
	parts := strings.Split(code, "-")
	if len(parts) < 2 {
		return PlaceholderAbsent
	}
	return orPlaceholder(parts[1])
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return PlaceholderAbsent
}
