package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for service order payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *logger.Logger
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable
// body is replaced by an empty payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, log *logger.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Component("payment_handler")}
}

// CreatePaymentByOrderID godoc
// @Summary      Pay a completed service order
// @Description  The charged amount is the order's authoritative total. An approved payment marks the order as paid.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                               true  "Service order id"
// @Param        body      body      request.BillingPaymentCreateRequest  false  "Mercado Pago payload (raw or wrapped in mp_payload)"
// @Success      200       {object}  response.BillingPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /payments/{order_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			h.log.Debug().Err(err).Str("order_id", orderID).Msg("payload invalid in mock mode; using empty payload")
			mpPayload = json.RawMessage("{}")
		} else {
			h.log.Warn().Err(err).Str("order_id", orderID).Msg("invalid payment payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error().Err(err).Str("order_id", orderID).Msg("create payment failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info().Str("order_id", orderID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment created")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByOrderID godoc
// @Summary  Latest payment of a service order
// @Tags     payments
// @Produce  json
// @Param    order_id  path      string  true  "Service order id"
// @Success  200       {object}  response.BillingPaymentResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /payments/{order_id} [get]
func (h *BillingPaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	payments, err := h.usecase.ListByServiceOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentOrderID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_COMPLETED", "Service order not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_ALREADY_PAID", "Service order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
