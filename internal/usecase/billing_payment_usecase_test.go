package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"
	"mecanica_os/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIBillingPaymentRepository
	orders  *mock_interfaces.MockIServiceOrderRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*BillingPaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIBillingPaymentRepository(ctrl),
		orders:  mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewBillingPaymentUseCase(m.repo, m.orders, m.gateway, opts, logger.Nop()), m
}

func completedOrder() entities.ServiceOrder {
	discounted := decimal.RequireFromString("77.2")
	return entities.ServiceOrder{
		ID:                     "o1",
		Code:                   "OS-0042",
		Status:                 status.Completed,
		TotalValueGeneral:      decimal.NewFromInt(100),
		TotalValueWithDiscount: &discounted,
	}
}

const validPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "o1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_OrderChecks(t *testing.T) {
	t.Run("order repo returns error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("order not completed", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.ServiceOrder{ID: "o1", Status: status.InProgress}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrOrderNotCompleted) {
			t.Fatalf("expected ErrOrderNotCompleted, got %v", err)
		}
	})

	t.Run("order already paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		o := completedOrder()
		o.Paid = true
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{AccessToken: "APP_USR-prod"})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentOptions{})
			m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
		marksPaid      bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{"id":123}`), marksPaid: true},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusNegado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPendente, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{`), marksPaid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentOptions{
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})
			m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)

			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "o1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Ordem de serviço OS-0042" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the discounted order total, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" || payer["id"] != nil {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.ServiceOrderID != "o1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() || !p.Amount.Equal(decimal.RequireFromString("77.2")) {
						t.Fatalf("unexpected payment: %+v", p)
					}
					return p, nil
				},
			)
			if tc.marksPaid {
				m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
						if !o.Paid {
							t.Fatalf("order should be marked paid")
						}
						return o, nil
					},
				)
			}

			res, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("repository create error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("mark paid error keeps the payment", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db-update"))

		res, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(validPayload))
		if err == nil || res.ID != "pay-1" {
			t.Fatalf("expected payment and error, got %+v %v", res, err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewBillingPaymentUseCase(repo, orders, nil, PaymentOptions{MockMode: true}, logger.Nop())

	orders.EXPECT().GetByID(gomock.Any(), "o1").Return(completedOrder(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
		if p.ID == "" || p.Status != entities.PaymentStatusAprovado || p.MPPayload["status"] != "approved" {
			t.Fatalf("unexpected mock payment %+v", p)
		}
		return p, nil
	})
	orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
		return o, nil
	})

	if _, err := uc.CreateAndApprove(context.Background(), "o1", json.RawMessage(`not json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBillingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID empty id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID repo error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByServiceOrderID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}, logger.Nop())
		_, err := uc.ListByServiceOrderID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("ListByServiceOrderID success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		expected := []entities.BillingPayment{{ID: "p1", Date: time.Now()}}
		m.repo.EXPECT().ListByServiceOrderID(gomock.Any(), "o1").Return(expected, nil)

		res, err := uc.ListByServiceOrderID(context.Background(), " o1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestBillingPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) {
			t.Fatalf("expected false")
		}
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for blank id")
		}
	})

	t.Run("ensurePayerDefaults sandbox fallback", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{AccessToken: "TEST-abc"}, logger.Nop())
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
			t.Fatalf("unexpected payer %v", payer)
		}
	})

	t.Run("paymentStatusFromProvider", func(t *testing.T) {
		if paymentStatusFromProvider(" Approved ") != entities.PaymentStatusAprovado {
			t.Fatalf("expected aprovado")
		}
		if paymentStatusFromProvider("cancelled") != entities.PaymentStatusNegado {
			t.Fatalf("expected negado")
		}
		if paymentStatusFromProvider("") != entities.PaymentStatusPendente {
			t.Fatalf("expected pendente")
		}
	})
}
