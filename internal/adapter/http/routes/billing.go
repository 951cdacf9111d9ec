package routes

import (
	"mecanica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}
}
