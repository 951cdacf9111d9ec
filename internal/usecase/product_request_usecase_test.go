package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"
	"mecanica_os/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type productRequestMocks struct {
	repo     *mock_interfaces.MockIProductRequestRepository
	orders   *mock_interfaces.MockIServiceOrderRepository
	products *mock_interfaces.MockICatalogProductRepository
}

func newProductRequestUseCase(t *testing.T) (*ProductRequestUseCase, productRequestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := productRequestMocks{
		repo:     mock_interfaces.NewMockIProductRequestRepository(ctrl),
		orders:   mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		products: mock_interfaces.NewMockICatalogProductRepository(ctrl),
	}
	uc := NewProductRequestUseCase(m.repo, m.orders, m.products, logger.Nop())
	uc.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func passThroughProductRequest(_ context.Context, r entities.ProductRequest) (entities.ProductRequest, error) {
	return r, nil
}

func TestProductRequestUseCase_Create(t *testing.T) {
	order := entities.ServiceOrder{ID: "o1", Code: "OS-0042", Status: status.InProgress}

	t.Run("validations", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "done").Return(entities.ServiceOrder{ID: "done", Status: status.Completed}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)

		one := []RequestedProductInput{{Name: "Filtro", Quantity: "1"}}
		cases := []struct {
			name    string
			orderID string
			in      CreateProductRequestInput
			want    error
		}{
			{"no products", "o1", CreateProductRequestInput{}, ErrInvalidProductRequest},
			{"blank order id", "  ", CreateProductRequestInput{Products: one}, ErrInvalidServiceOrderID},
			{"unknown order", "missing", CreateProductRequestInput{Products: one}, ErrServiceOrderNotFound},
			{"locked order", "done", CreateProductRequestInput{Products: one}, ErrOrderLocked},
			{"nameless product", "o1", CreateProductRequestInput{Products: []RequestedProductInput{{Quantity: "2"}}}, ErrInvalidProductRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tc.orderID, tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("unknown catalog product", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.CatalogProduct{}, nil)

		_, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products: []RequestedProductInput{{ProductID: "p9", Quantity: "1"}},
		})
		if !errors.Is(err, ErrCatalogProductNotFound) {
			t.Fatalf("expected ErrCatalogProductNotFound, got %v", err)
		}
	})

	t.Run("stores a pending request and keeps the order status", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.CatalogProduct{ID: "p1", Code: "FLT-01", Name: "Filtro de óleo"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughProductRequest)

		got, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products: []RequestedProductInput{
				{ProductID: "p1", Quantity: "2"},
				{Name: " Pastilha de freio ", Code: "PST", Quantity: "abc"},
				{Name: "Correia", Quantity: "1e19"},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "o1", got.ServiceOrderID)
		assert.Equal(t, "OS-0042", got.ServiceOrderCode)
		assert.Equal(t, entities.ProductRequestPending, got.Status)
		assert.Equal(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), got.CreatedAt)
		assert.Equal(t, []entities.RequestedProduct{
			{ProductID: "p1", Code: "FLT-01", Name: "Filtro de óleo", Quantity: 2},
			{Code: "PST", Name: "Pastilha de freio", Quantity: 1},
			{Name: "Correia", Quantity: 1_000_000},
		}, got.Products)
	})

	t.Run("typed name and code skip the catalog", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughProductRequest)

		got, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products: []RequestedProductInput{{ProductID: "p1", Code: "X", Name: "Vela", Quantity: "4"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Vela", got.Products[0].Name)
	})

	t.Run("moves the order to pending product", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughProductRequest)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			assert.Equal(t, status.PendingProduct, o.Status)
			assert.Equal(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), o.UpdatedAt)
			return o, nil
		})

		_, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products:           []RequestedProductInput{{Name: "Filtro", Quantity: "1"}},
			MarkPendingProduct: true,
		})
		require.NoError(t, err)
	})

	t.Run("already pending product skips the update", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		pending := order
		pending.Status = status.PendingProduct
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(pending, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughProductRequest)

		_, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products:           []RequestedProductInput{{Name: "Filtro", Quantity: "1"}},
			MarkPendingProduct: true,
		})
		require.NoError(t, err)
	})

	t.Run("status update failure returns the stored request", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		boom := errors.New("dynamo down")
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughProductRequest)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, boom)

		got, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products:           []RequestedProductInput{{Name: "Filtro", Quantity: "1"}},
			MarkPendingProduct: true,
		})
		assert.ErrorIs(t, err, boom)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		boom := errors.New("dynamo down")
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProductRequest{}, boom)

		_, err := uc.Create(context.Background(), "o1", CreateProductRequestInput{
			Products:           []RequestedProductInput{{Name: "Filtro", Quantity: "1"}},
			MarkPendingProduct: true,
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestProductRequestUseCase_ListByServiceOrderID(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, nil)

		_, err := uc.ListByServiceOrderID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrServiceOrderNotFound)
	})

	t.Run("lists the order requests", func(t *testing.T) {
		uc, m := newProductRequestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.ServiceOrder{ID: "o1"}, nil)
		m.repo.EXPECT().ListByServiceOrderID(gomock.Any(), "o1").Return([]entities.ProductRequest{{ID: "r1"}}, nil)

		got, err := uc.ListByServiceOrderID(context.Background(), "o1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
