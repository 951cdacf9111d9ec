package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentOrderID          = errors.New("invalid service order id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderNotCompleted              = errors.New("service order not completed")
	ErrOrderAlreadyPaid               = errors.New("service order already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase charges a completed service order.
//
// The charged amount is always the order's authoritative total; a successful
// payment marks the order as paid.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.BillingPayment, error)
}

// PaymentOptions configures the gateway behavior.
type PaymentOptions struct {
	// MockMode skips the external gateway and approves immediately.
	MockMode bool
	// AccessToken is inspected only to detect sandbox ("TEST-") credentials.
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

type BillingPaymentUseCase struct {
	repo    interfaces.IBillingPaymentRepository
	orders  interfaces.IServiceOrderRepository
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	log     *logger.Logger
	now     func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	orders interfaces.IServiceOrderRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	log *logger.Logger,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:    repo,
		orders:  orders,
		gateway: gateway,
		opts:    opts,
		log:     log.Component("payment"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	mock := u.opts.MockMode
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mock {
			u.log.Warn().Str("order_id", orderID).Msg("invalid payment payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mock {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", orderID).Msg("load service order failed")
		return entities.BillingPayment{}, err
	}
	if order.ID == "" {
		return entities.BillingPayment{}, ErrServiceOrderNotFound
	}
	if order.Status != status.Completed {
		return entities.BillingPayment{}, fmt.Errorf("%w: status %s", ErrOrderNotCompleted, order.Status)
	}
	if order.Paid {
		return entities.BillingPayment{}, ErrOrderAlreadyPaid
	}
	amount := order.AuthoritativeTotal()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mock {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ordem de serviço %s", order.Code)
	}
	// the order total is authoritative, whatever the client sent
	reqMap["transaction_amount"] = amount.InexactFloat64()

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mock {
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
		if err != nil {
			return entities.BillingPayment{}, err
		}
		u.log.Info().Str("order_id", orderID).Msg("mock mode: external gateway skipped")
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.log.Error().Err(err).Str("order_id", orderID).Msg("payment gateway failed")
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("order_id", orderID).Msg("provider response is not a json object")
	}

	p := entities.BillingPayment{
		ID:             providerPaymentID,
		ServiceOrderID: orderID,
		Amount:         amount,
		Date:           u.now(),
		Status:         paymentStatusFromProvider(providerStatus),
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", orderID).Str("payment_id", p.ID).Msg("persist payment failed")
		return entities.BillingPayment{}, err
	}

	if created.Status != entities.PaymentStatusAprovado {
		u.log.Info().Str("order_id", orderID).Str("payment_id", created.ID).Str("provider_status", providerStatus).Msg("payment not approved")
		return created, nil
	}

	order.Paid = true
	order.UpdatedAt = u.now()
	if _, err := u.orders.Update(ctx, order); err != nil {
		// the payment exists; surface the error so the caller can retry marking
		u.log.Error().Err(err).Str("order_id", orderID).Str("payment_id", created.ID).Msg("mark order paid failed")
		return created, err
	}

	u.log.Info().
		Str("order_id", orderID).
		Str("payment_id", created.ID).
		Str("provider_status", providerStatus).
		Str("amount", amount.StringFixed(2)).
		Msg("service order paid")
	return created, nil
}

func (u *BillingPaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UnixNano(), 10)
	now := u.now().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// sandbox accepts either payer.id or payer.email
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured test user id for its e-mail,
// which the sandbox requires when seller and payer are both test users.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByServiceOrderID(ctx, orderID)
}
