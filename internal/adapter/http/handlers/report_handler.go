package handlers

import (
	"errors"
	"net/http"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/domain"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidSchedulePayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULE_INPUT", "hour and minute are required", http.StatusBadRequest)

// ReportHandler exposes the report dispatch schedule and the dashboard
// queries built from the same report use case.
type ReportHandler struct {
	reports   usecase.IReportUseCase
	scheduler usecase.IReportSchedulerUseCase
	log       *logger.Logger
}

func NewReportHandler(reports usecase.IReportUseCase, scheduler usecase.IReportSchedulerUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, scheduler: scheduler, log: log.Component("report_handler")}
}

// GetSchedule godoc
// @Summary  Current report dispatch schedule
// @Tags     report-dispatch
// @Produce  json
// @Success  200  {object}  response.ScheduleResponse
// @Router   /report-dispatch [get]
func (h *ReportHandler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSchedule(h.scheduler.State()))
}

// SetSchedule godoc
// @Summary      Set the daily dispatch time
// @Description  Replaces any previous trigger. On an invalid time the previous schedule is kept.
// @Tags         report-dispatch
// @Accept       json
// @Produce      json
// @Param        body  body      request.ScheduleRequest  true  "hour 0-23, minute 0-59"
// @Success      200   {object}  response.ScheduleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /report-dispatch/schedule [put]
func (h *ReportHandler) SetSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}
	cfg, err := h.scheduler.Schedule(*payload.Hour, *payload.Minute)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSchedule(cfg))
}

// StopSchedule godoc
// @Summary  Stop the daily dispatch
// @Tags     report-dispatch
// @Produce  json
// @Success  200  {object}  response.ScheduleResponse
// @Router   /report-dispatch/schedule [delete]
func (h *ReportHandler) StopSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSchedule(h.scheduler.Stop()))
}

// RunNow godoc
// @Summary  Generate and send the report immediately
// @Tags     report-dispatch
// @Success  202
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /report-dispatch/run [post]
func (h *ReportHandler) RunNow(c *gin.Context) {
	if err := h.reports.GenerateAndSendReport(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// NearDeadline godoc
// @Summary  Open orders close to their deadline
// @Tags     dashboard
// @Produce  json
// @Success  200  {array}  response.EnrichedOrderResponse
// @Router   /dashboard/near-deadline [get]
func (h *ReportHandler) NearDeadline(c *gin.Context) {
	orders, err := h.reports.NearDeadline(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedOrders(orders))
}

// PastDeadline godoc
// @Summary  Open orders past their deadline
// @Tags     dashboard
// @Produce  json
// @Success  200  {array}  response.EnrichedOrderResponse
// @Router   /dashboard/past-deadline [get]
func (h *ReportHandler) PastDeadline(c *gin.Context) {
	orders, err := h.reports.PastDeadline(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedOrders(orders))
}

// MonthlyBilling godoc
// @Summary  Billing totals of a month
// @Tags     dashboard
// @Produce  json
// @Param    month  query     string  false  "YYYY-MM, defaults to the current month"
// @Success  200    {object}  response.MonthlyBillingResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /dashboard/monthly [get]
func (h *ReportHandler) MonthlyBilling(c *gin.Context) {
	m, err := h.reports.MonthlyBilling(c.Request.Context(), c.Query("month"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlyBilling(m))
}

func (h *ReportHandler) respondError(c *gin.Context, err error) {
	appErr := mapReportError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidTime):
		return pkg.NewDomainErrorSimple("INVALID_TIME", "hour must be 0-23 and minute 0-59", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_MONTH", "month must be YYYY-MM", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoReportRecipient):
		return pkg.NewDomainErrorSimple("NO_REPORT_RECIPIENT", "No report recipients configured", http.StatusConflict)
	case errors.Is(err, domain.ErrReportDispatchFailure):
		return pkg.NewDomainError("REPORT_DISPATCH_FAILED", "Report dispatch failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
