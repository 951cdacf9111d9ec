package handlers

import (
	"errors"
	"net/http"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidProductRequestPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_REQUEST", "Invalid product request payload", http.StatusBadRequest)

// ProductRequestHandler handles requests for parts a service order is
// waiting on.
type ProductRequestHandler struct {
	useCase usecase.IProductRequestUseCase
	log     *logger.Logger
}

func NewProductRequestHandler(useCase usecase.IProductRequestUseCase, log *logger.Logger) *ProductRequestHandler {
	return &ProductRequestHandler{useCase: useCase, log: log.Component("product_request_handler")}
}

// CreateProductRequest godoc
// @Summary      Request products for a service order
// @Description  Stores a pending request. With mark_pending_product the order moves to pending_product.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                               true  "Order id"
// @Param        body  body      request.CreateProductRequestRequest  true  "Requested products"
// @Success      201   {object}  response.ProductRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/product-requests [post]
func (h *ProductRequestHandler) CreateProductRequest(c *gin.Context) {
	var payload request.CreateProductRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductRequestPayload.HTTPStatus, errInvalidProductRequestPayload.ToHTTPError())
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProductRequest(created))
}

// ListProductRequests godoc
// @Summary      List product requests of a service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {array}   response.ProductRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/product-requests [get]
func (h *ProductRequestHandler) ListProductRequests(c *gin.Context) {
	requests, err := h.useCase.ListByServiceOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProductRequests(requests))
}

func (h *ProductRequestHandler) respondError(c *gin.Context, err error) {
	appErr := mapProductRequestError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Str("order_id", c.Param("id")).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapProductRequestError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidProductRequest) {
		return errInvalidProductRequestPayload
	}
	return mapServiceOrderError(err)
}
