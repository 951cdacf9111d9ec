package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errInvalidLineItemIndex       = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INDEX", "Line item index must be a non-negative integer", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders (O.S.) and
// their line items.
type ServiceOrderHandler struct {
	orders usecase.IServiceOrderUseCase
	query  usecase.IOrderQueryUseCase
	log    *logger.Logger
}

func NewServiceOrderHandler(orders usecase.IServiceOrderUseCase, query usecase.IOrderQueryUseCase, log *logger.Logger) *ServiceOrderHandler {
	return &ServiceOrderHandler{orders: orders, query: query, log: log.Component("service_order_handler")}
}

// ListServiceOrders godoc
// @Summary      List service orders
// @Description  Applies only the supplied filters. Client and vehicle names that cannot be resolved are replaced by placeholders.
// @Tags         service-orders
// @Produce      json
// @Param        clientId  query  string  false  "Client id"
// @Param        date      query  string  false  "Entry date (YYYY-MM-DD)"
// @Param        code      query  string  false  "Part of the order code"
// @Param        status    query  string  false  "Status filter label, e.g. pendente, concluido or todos"
// @Param        paid      query  string  false  "sim, nao or todos"
// @Success      200  {array}   response.EnrichedOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	filter, err := h.query.BuildFilter(usecase.FilterInput{
		ClientID:          c.Query("clientId"),
		Date:              c.Query("date"),
		Code:              c.Query("code"),
		StatusFilterLabel: c.Query("status"),
		PaidFilter:        c.Query("paid"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	orders, err := h.query.FetchEnrichedOrders(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedOrders(orders))
}

// ListStatusFilters godoc
// @Summary      List the status search options
// @Description  Filter labels accepted by the status query of GET /service-orders, with the code and display label each one selects.
// @Tags         service-orders
// @Produce      json
// @Success      200  {array}  response.StatusFilterResponse
// @Router       /service-orders/status-filters [get]
func (h *ServiceOrderHandler) ListStatusFilters(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusFilters())
}

// CreateServiceOrder godoc
// @Summary      Create a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateServiceOrderRequest  true  "Order form"
// @Success      201   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	created, err := h.orders.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

// GetServiceOrder godoc
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// DeleteServiceOrder godoc
// @Summary      Delete a service order
// @Tags         service-orders
// @Param        id   path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [delete]
func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadServiceOrderPDF godoc
// @Summary      Download the printable order
// @Tags         service-orders
// @Produce      application/pdf
// @Param        id   path      string  true  "Order id"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/pdf [get]
func (h *ServiceOrderHandler) DownloadServiceOrderPDF(c *gin.Context) {
	content, filename, err := h.orders.DownloadPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}

// UpdateStatus godoc
// @Summary      Change the order status
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Order id"
// @Param        body  body      request.UpdateStatusRequest  true  "Canonical status code"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	o, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), status.Code(payload.Status))
	h.respondOrder(c, o, err)
}

// SetDiscount godoc
// @Summary      Set the discount amount
// @Description  Zero removes the discount. The discounted total never goes below zero.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Order id"
// @Param        body  body      request.DiscountRequest  true  "Discount"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/discount [patch]
func (h *ServiceOrderHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	discount, err := payload.Discount.Decimal()
	if err != nil {
		h.respondError(c, usecase.ErrInvalidDiscount)
		return
	}
	o, err := h.orders.SetDiscount(c.Request.Context(), c.Param("id"), discount)
	h.respondOrder(c, o, err)
}

// ReplaceLineItems godoc
// @Summary      Replace all line items
// @Description  Items are normalized: quantity at least 1, non-negative prices, totals recomputed.
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Order id"
// @Param        body  body      request.ReplaceLineItemsRequest  true  "Line items"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/line-items [put]
func (h *ServiceOrderHandler) ReplaceLineItems(c *gin.Context) {
	var payload request.ReplaceLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	o, err := h.orders.ReplaceLineItems(c.Request.Context(), c.Param("id"), request.ToRawItems(payload.LineItems))
	h.respondOrder(c, o, err)
}

// AddLineItem appends a blank item.
// @Summary  Add a blank line item
// @Tags     line-items
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  response.ServiceOrderResponse
// @Router   /service-orders/{id}/line-items [post]
func (h *ServiceOrderHandler) AddLineItem(c *gin.Context) {
	o, err := h.orders.AddBlankLineItem(c.Request.Context(), c.Param("id"))
	h.respondOrder(c, o, err)
}

// @Summary  Remove a line item
// @Tags     line-items
// @Produce  json
// @Param    id     path      string  true  "Order id"
// @Param    index  path      int     true  "Line item position"
// @Success  200    {object}  response.ServiceOrderResponse
// @Router   /service-orders/{id}/line-items/{index} [delete]
func (h *ServiceOrderHandler) RemoveLineItem(c *gin.Context) {
	index, ok := lineItemIndex(c)
	if !ok {
		return
	}
	o, err := h.orders.RemoveLineItem(c.Request.Context(), c.Param("id"), index)
	h.respondOrder(c, o, err)
}

// @Summary  Fill a line item from the product catalog
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id     path      string                      true  "Order id"
// @Param    index  path      int                         true  "Line item position"
// @Param    body   body      request.BindProductRequest  true  "Catalog product"
// @Success  200    {object}  response.ServiceOrderResponse
// @Router   /service-orders/{id}/line-items/{index}/product [put]
func (h *ServiceOrderHandler) BindProduct(c *gin.Context) {
	index, ok := lineItemIndex(c)
	if !ok {
		return
	}
	var payload request.BindProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	o, err := h.orders.BindCatalogProduct(c.Request.Context(), c.Param("id"), index, payload.ProductID)
	h.respondOrder(c, o, err)
}

// @Summary  Change a line item quantity
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id     path      string                   true  "Order id"
// @Param    index  path      int                      true  "Line item position"
// @Param    body   body      request.QuantityRequest  true  "Quantity"
// @Success  200    {object}  response.ServiceOrderResponse
// @Router   /service-orders/{id}/line-items/{index}/quantity [patch]
func (h *ServiceOrderHandler) SetQuantity(c *gin.Context) {
	index, ok := lineItemIndex(c)
	if !ok {
		return
	}
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	o, err := h.orders.SetLineItemQuantity(c.Request.Context(), c.Param("id"), index, payload.Value())
	h.respondOrder(c, o, err)
}

func lineItemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidLineItemIndex.HTTPStatus, errInvalidLineItemIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func (h *ServiceOrderHandler) respondOrder(c *gin.Context, o entities.ServiceOrder, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) respondError(c *gin.Context, err error) {
	appErr := mapServiceOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Str("order_id", c.Param("id")).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilter):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceOrderID),
		errors.Is(err, usecase.ErrInvalidOrderCode),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidDeadline):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be a non-negative amount", http.StatusBadRequest)
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Catalog product not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_ALREADY_EXISTS", "Service order code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_LOCKED", "Completed or canceled orders cannot be edited", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
