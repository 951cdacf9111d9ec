package routes

import (
	"mecanica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReportDispatch = "/report-dispatch"
	PathDashboard      = "/dashboard"
)

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	dispatch := rg.Group(PathReportDispatch)
	{
		dispatch.GET("", h.GetSchedule)
		dispatch.PUT("/schedule", h.SetSchedule)
		dispatch.DELETE("/schedule", h.StopSchedule)
		dispatch.POST("/run", h.RunNow)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/near-deadline", h.NearDeadline)
		dashboard.GET("/past-deadline", h.PastDeadline)
		dashboard.GET("/monthly", h.MonthlyBilling)
	}
}
