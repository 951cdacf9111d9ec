package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"
	"mecanica_os/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueryUseCase_BuildFilter(t *testing.T) {
	uc := NewOrderQueryUseCase(nil, nil, nil, nil, logger.Nop(), 0)

	t.Run("empty input yields empty filter", func(t *testing.T) {
		f, err := uc.BuildFilter(FilterInput{})
		require.NoError(t, err)
		assert.Empty(t, f)
	})

	t.Run("todos omits status and paid keys", func(t *testing.T) {
		f, err := uc.BuildFilter(FilterInput{StatusFilterLabel: "todos", PaidFilter: "todos"})
		require.NoError(t, err)
		_, hasStatus := f[entities.FilterStatus]
		_, hasPaid := f[entities.FilterPaid]
		assert.False(t, hasStatus)
		assert.False(t, hasPaid)
	})

	t.Run("filter label translated to canonical code", func(t *testing.T) {
		f, err := uc.BuildFilter(FilterInput{StatusFilterLabel: "concluido"})
		require.NoError(t, err)
		assert.Equal(t, string(status.Completed), f[entities.FilterStatus])
	})

	t.Run("pendente is budget, not pending product", func(t *testing.T) {
		f, err := uc.BuildFilter(FilterInput{StatusFilterLabel: "pendente"})
		require.NoError(t, err)
		assert.Equal(t, string(status.Budget), f[entities.FilterStatus])
	})

	t.Run("unknown status label", func(t *testing.T) {
		_, err := uc.BuildFilter(FilterInput{StatusFilterLabel: "arquivado"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("all supplied keys are trimmed and kept", func(t *testing.T) {
		f, err := uc.BuildFilter(FilterInput{
			ClientID:          " cli-1 ",
			Date:              "2026-10-01",
			Code:              "OS-00",
			StatusFilterLabel: "EmProgresso",
			PaidFilter:        "NAO",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderFilter{
			entities.FilterClientID: "cli-1",
			entities.FilterDate:     "2026-10-01",
			entities.FilterCode:     "OS-00",
			entities.FilterStatus:   string(status.InProgress),
			entities.FilterPaid:     entities.PaidNo,
		}, f)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := uc.BuildFilter(FilterInput{Date: "01/10/2026"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("invalid paid flag", func(t *testing.T) {
		_, err := uc.BuildFilter(FilterInput{PaidFilter: "talvez"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})
}

func TestOSNumber(t *testing.T) {
	cases := map[string]string{
		"OS-0042":   "0042",
		"OS0042":    "—",
		"":          "—",
		"OS-":       "—",
		"OS- 7 -X":  "7",
		"-":         "—",
		"OS-12-rev": "12",
	}
	for code, want := range cases {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, OSNumber(code))
		})
	}
}

func TestOrderQueryUseCase_FetchEnrichedOrders(t *testing.T) {
	t.Run("list error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(orders, nil, nil, nil, logger.Nop(), 4)

		orders.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.FetchEnrichedOrders(context.Background(), entities.OrderFilter{})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("one failing client lookup does not drop other orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		metrics := mock_interfaces.NewMockIOperationalMetrics(ctrl)
		uc := NewOrderQueryUseCase(orders, clients, vehicles, metrics, logger.Nop(), 4)

		discounted := decimal.NewFromInt(90)
		filter := entities.OrderFilter{entities.FilterPaid: entities.PaidNo}
		orders.EXPECT().List(gomock.Any(), filter).Return([]entities.ServiceOrder{
			{ID: "o1", Code: "OS-0001", ClientID: "c-bad", VehicleID: "v1", Status: status.Budget, TotalValueGeneral: decimal.NewFromInt(100)},
			{ID: "o2", Code: "OS-0002", ClientID: "c-ok", VehicleID: "v2", Status: "archived", TotalValueGeneral: decimal.NewFromInt(100), TotalValueWithDiscount: &discounted},
		}, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c-bad").Return(entities.Client{}, errors.New("timeout"))
		clients.EXPECT().GetByID(gomock.Any(), "c-ok").Return(entities.Client{ID: "c-ok", Name: "Maria"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{ID: "v1", Name: "Gol", LicensePlate: "ABC1D23"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v2").Return(entities.Vehicle{}, nil)
		metrics.EXPECT().ObserveLookupFailure("client")
		metrics.EXPECT().ObserveLookupFailure("vehicle")

		got, err := uc.FetchEnrichedOrders(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "o1", got[0].ID)
		assert.Equal(t, "0001", got[0].OSNumber)
		assert.Equal(t, PlaceholderClientNotFound, got[0].ClientName)
		assert.Equal(t, "Gol", got[0].VehicleDescription)
		assert.Equal(t, "ABC1D23", got[0].VehiclePlate)
		assert.Equal(t, "Orçamento", got[0].StatusLabel)
		assert.True(t, got[0].Value.Equal(decimal.NewFromInt(100)))

		assert.Equal(t, "o2", got[1].ID)
		assert.Equal(t, "Maria", got[1].ClientName)
		assert.Equal(t, PlaceholderVehicleNotFound, got[1].VehicleDescription)
		assert.Equal(t, PlaceholderAbsent, got[1].VehiclePlate)
		assert.Equal(t, status.UnknownLabel, got[1].StatusLabel)
		assert.True(t, got[1].Value.Equal(discounted))
	})

	t.Run("absent references and nameless records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewOrderQueryUseCase(orders, clients, vehicles, nil, logger.Nop(), 1)

		orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{
			{ID: "o1", Code: "OS-1"},
			{ID: "o2", Code: "OS-2", ClientID: "c1", VehicleID: "v1"},
		}, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{ID: "v1", LicensePlate: "XYZ9A87"}, nil)

		got, err := uc.FetchEnrichedOrders(context.Background(), entities.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, PlaceholderAbsent, got[0].ClientName)
		assert.Equal(t, PlaceholderAbsent, got[0].VehicleDescription)
		assert.Equal(t, PlaceholderAbsent, got[0].VehiclePlate)

		assert.Equal(t, PlaceholderClientNoName, got[1].ClientName)
		assert.Equal(t, PlaceholderAbsent, got[1].VehicleDescription)
		assert.Equal(t, "XYZ9A87", got[1].VehiclePlate)
	})
}

type slowClientRepo struct {
	inFlight atomic.Int32
	mu       sync.Mutex
	peak     int32
}

func (r *slowClientRepo) GetByID(_ context.Context, id string) (entities.Client, error) {
	n := r.inFlight.Add(1)
	r.mu.Lock()
	if n > r.peak {
		r.peak = n
	}
	r.mu.Unlock()
	time.Sleep(5 * time.Millisecond)
	r.inFlight.Add(-1)
	return entities.Client{ID: id, Name: "c"}, nil
}

func TestOrderQueryUseCase_Enrich_BoundsConcurrencyAndKeepsOrder(t *testing.T) {
	clients := &slowClientRepo{}
	uc := NewOrderQueryUseCase(nil, clients, nil, nil, logger.Nop(), 3)

	var orders []entities.ServiceOrder
	for i := 0; i < 20; i++ {
		orders = append(orders, entities.ServiceOrder{ID: string(rune('a' + i)), ClientID: "c"})
	}

	got := uc.Enrich(context.Background(), orders)
	require.Len(t, got, len(orders))
	for i := range orders {
		assert.Equal(t, orders[i].ID, got[i].ID)
	}
	clients.mu.Lock()
	defer clients.mu.Unlock()
	assert.LessOrEqual(t, clients.peak, int32(3))
	assert.GreaterOrEqual(t, clients.peak, int32(1))
}
