package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_os/internal/adapter/http/handlers/mocks"
	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/lineitem"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newServiceOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase, *mocks.MockIOrderQueryUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIServiceOrderUseCase(ctrl)
	query := mocks.NewMockIOrderQueryUseCase(ctrl)
	h := NewServiceOrderHandler(orders, query, logger.Nop())

	r := gin.New()
	g := r.Group("/v1/service-orders")
	g.GET("", h.ListServiceOrders)
	g.POST("", h.CreateServiceOrder)
	g.GET("/status-filters", h.ListStatusFilters)
	g.GET("/:id", h.GetServiceOrder)
	g.DELETE("/:id", h.DeleteServiceOrder)
	g.GET("/:id/pdf", h.DownloadServiceOrderPDF)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.PATCH("/:id/discount", h.SetDiscount)
	g.PUT("/:id/line-items", h.ReplaceLineItems)
	g.POST("/:id/line-items", h.AddLineItem)
	g.DELETE("/:id/line-items/:index", h.RemoveLineItem)
	g.PUT("/:id/line-items/:index/product", h.BindProduct)
	g.PATCH("/:id/line-items/:index/quantity", h.SetQuantity)
	return r, orders, query
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceOrderHandler_List(t *testing.T) {
	t.Run("passes the raw form to the filter builder", func(t *testing.T) {
		r, _, query := newServiceOrderRouter(t)

		in := usecase.FilterInput{ClientID: "c1", StatusFilterLabel: "concluido", PaidFilter: "sim"}
		filter := entities.OrderFilter{entities.FilterClientID: "c1"}
		query.EXPECT().BuildFilter(in).Return(filter, nil)
		query.EXPECT().FetchEnrichedOrders(gomock.Any(), filter).Return([]entities.EnrichedOrder{
			{ID: "a", ClientName: usecase.PlaceholderClientNotFound, Value: decimal.NewFromInt(10)},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/service-orders?clientId=c1&status=concluido&paid=sim", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["cliente_nome"] != usecase.PlaceholderClientNotFound || body[0]["valor"] != 10.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		r, _, query := newServiceOrderRouter(t)
		query.EXPECT().BuildFilter(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", usecase.ErrInvalidFilter, domain.ErrInvalidStatus))

		w := doJSON(r, http.MethodGet, "/v1/service-orders?status=Foo", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		r, _, query := newServiceOrderRouter(t)
		query.EXPECT().BuildFilter(gomock.Any()).Return(entities.OrderFilter{}, nil)
		query.EXPECT().FetchEnrichedOrders(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := doJSON(r, http.MethodGet, "/v1/service-orders", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ListStatusFilters(t *testing.T) {
	r, _, query := newServiceOrderRouter(t)
	w := doJSON(r, http.MethodGet, "/v1/service-orders/status-filters", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []struct {
		Filter string `json:"filter"`
		Status string `json:"status"`
		Label  string `json:"label"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(status.All())+1 || got[0].Filter != status.FilterAll {
		t.Fatalf("unexpected options %+v", got)
	}

	// Every advertised label must select exactly its code when sent back.
	for _, opt := range got[1:] {
		query.EXPECT().BuildFilter(usecase.FilterInput{StatusFilterLabel: opt.Filter}).Return(entities.OrderFilter{}, nil)
		query.EXPECT().FetchEnrichedOrders(gomock.Any(), gomock.Any()).Return(nil, nil)
		if w := doJSON(r, http.MethodGet, "/v1/service-orders?status="+opt.Filter, ""); w.Code != http.StatusOK {
			t.Fatalf("filter %q: expected 200, got %d", opt.Filter, w.Code)
		}

		code, ok, err := status.CodeFromFilterLabel(opt.Filter)
		if err != nil || !ok || string(code) != opt.Status || code.Label() != opt.Label {
			t.Fatalf("filter %q does not round-trip: %q %v %v", opt.Filter, code, ok, err)
		}
	}
}

func TestServiceOrderHandler_Create(t *testing.T) {
	t.Run("binding error", func(t *testing.T) {
		r, _, _ := newServiceOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/service-orders", `{"client_id":"c1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, orders, _ := newServiceOrderRouter(t)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateServiceOrderInput) (entities.ServiceOrder, error) {
				if in.Code != "OS-7" || len(in.LineItems) != 1 || in.LineItems[0].SalePrice != "25,90" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ServiceOrder{ID: "os-1", Code: in.Code, Status: status.Request}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/service-orders",
			`{"code":"OS-7","client_id":"c1","line_items":[{"name":"Óleo","quantity":1,"sale_price":"25,90"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		r, orders, _ := newServiceOrderRouter(t)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrServiceOrderAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/service-orders", `{"code":"OS-7","client_id":"c1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetDeleteAndPDF(t *testing.T) {
	r, orders, _ := newServiceOrderRouter(t)

	orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/service-orders/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	orders.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/service-orders/os-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	orders.EXPECT().DownloadPDF(gomock.Any(), "os-1").Return([]byte("%PDF-1.3"), "OS_OS-1.pdf", nil)
	w := doJSON(r, http.MethodGet, "/v1/service-orders/os-1/pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="OS_OS-1.pdf"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestServiceOrderHandler_StatusAndDiscount(t *testing.T) {
	r, orders, _ := newServiceOrderRouter(t)

	orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", status.Code("bogus")).Return(entities.ServiceOrder{}, domain.ErrInvalidStatus)
	if w := doJSON(r, http.MethodPatch, "/v1/service-orders/os-1/status", `{"status":"bogus"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", status.Completed).Return(entities.ServiceOrder{ID: "os-1", Status: status.Completed}, nil)
	if w := doJSON(r, http.MethodPatch, "/v1/service-orders/os-1/status", `{"status":"completed"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodPatch, "/v1/service-orders/os-1/discount", `{"discount":"abc"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unparseable discount, got %d", w.Code)
	}

	orders.EXPECT().SetDiscount(gomock.Any(), "os-1", decimal.RequireFromString("12.5")).Return(entities.ServiceOrder{ID: "os-1"}, nil)
	if w := doJSON(r, http.MethodPatch, "/v1/service-orders/os-1/discount", `{"discount":"12,5"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServiceOrderHandler_LineItems(t *testing.T) {
	r, orders, _ := newServiceOrderRouter(t)

	orders.EXPECT().ReplaceLineItems(gomock.Any(), "os-1", []lineitem.RawItem{{Name: "Filtro", Quantity: "0", SalePrice: "-5"}}).
		Return(entities.ServiceOrder{ID: "os-1"}, nil)
	if w := doJSON(r, http.MethodPut, "/v1/service-orders/os-1/line-items", `{"line_items":[{"name":"Filtro","quantity":0,"sale_price":-5}]}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	orders.EXPECT().AddBlankLineItem(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, usecase.ErrOrderLocked)
	if w := doJSON(r, http.MethodPost, "/v1/service-orders/os-1/line-items", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, "/v1/service-orders/os-1/line-items/x", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad index, got %d", w.Code)
	}

	orders.EXPECT().RemoveLineItem(gomock.Any(), "os-1", 4).Return(entities.ServiceOrder{}, fmt.Errorf("remove: %w", domain.ErrIndexOutOfRange))
	if w := doJSON(r, http.MethodDelete, "/v1/service-orders/os-1/line-items/4", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	orders.EXPECT().BindCatalogProduct(gomock.Any(), "os-1", 0, "p1").Return(entities.ServiceOrder{}, usecase.ErrCatalogProductNotFound)
	if w := doJSON(r, http.MethodPut, "/v1/service-orders/os-1/line-items/0/product", `{"product_id":"p1"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	orders.EXPECT().SetLineItemQuantity(gomock.Any(), "os-1", 0, 1).Return(entities.ServiceOrder{ID: "os-1"}, nil)
	if w := doJSON(r, http.MethodPatch, "/v1/service-orders/os-1/line-items/0/quantity", `{"quantity":"abc"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapServiceOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: %w", usecase.ErrInvalidFilter, domain.ErrInvalidStatus), http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{usecase.ErrInvalidOrderCode, http.StatusBadRequest},
		{usecase.ErrInvalidDeadline, http.StatusBadRequest},
		{usecase.ErrInvalidDiscount, http.StatusBadRequest},
		{domain.ErrIndexOutOfRange, http.StatusNotFound},
		{usecase.ErrServiceOrderNotFound, http.StatusNotFound},
		{fmt.Errorf("update: %w", domain.ErrNotFound), http.StatusNotFound},
		{usecase.ErrServiceOrderAlreadyExists, http.StatusConflict},
		{usecase.ErrOrderLocked, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapServiceOrderError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
