package routes

import (
	"mecanica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler, requests *handlers.ProductRequestHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.GET("", h.ListServiceOrders)
		orders.POST("", h.CreateServiceOrder)
		orders.GET("/status-filters", h.ListStatusFilters)
		orders.GET("/:id", h.GetServiceOrder)
		orders.DELETE("/:id", h.DeleteServiceOrder)
		orders.GET("/:id/pdf", h.DownloadServiceOrderPDF)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.PATCH("/:id/discount", h.SetDiscount)
	}

	items := orders.Group("/:id/line-items")
	{
		items.PUT("", h.ReplaceLineItems)
		items.POST("", h.AddLineItem)
		items.DELETE("/:index", h.RemoveLineItem)
		items.PUT("/:index/product", h.BindProduct)
		items.PATCH("/:index/quantity", h.SetQuantity)
	}

	productRequests := orders.Group("/:id/product-requests")
	{
		productRequests.POST("", requests.CreateProductRequest)
		productRequests.GET("", requests.ListProductRequests)
	}
}
