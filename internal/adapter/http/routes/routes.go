package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "mecanica_os/docs" // swag generated
	"mecanica_os/internal/adapter/http/handlers"
	"mecanica_os/internal/adapter/persistence/repository"
	"mecanica_os/internal/config"
	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/infrastructure/metrics"
	"mecanica_os/internal/infrastructure/notification"
	"mecanica_os/internal/infrastructure/payments"
	"mecanica_os/internal/infrastructure/pdf"
	"mecanica_os/internal/infrastructure/scheduler"
	"mecanica_os/internal/usecase"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts under /v1.
type Handlers struct {
	ServiceOrders   *handlers.ServiceOrderHandler
	ProductRequests *handlers.ProductRequestHandler
	Reports         *handlers.ReportHandler
	Payments        *handlers.BillingPaymentHandler
}

// Run wires the application and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	loc, err := cfg.Report.Location()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to UTC")
	}

	clients, err := database.Connect(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	prom := metrics.NewPrometheus()

	orderRepo := repository.NewServiceOrderDynamoRepository(clients.DynamoDB, cfg.Tables.ServiceOrders, loc)
	clientRepo := repository.NewClientDynamoRepository(clients.DynamoDB, cfg.Tables.Clients)
	vehicleRepo := repository.NewVehicleDynamoRepository(clients.DynamoDB, cfg.Tables.Vehicles)
	productRepo := repository.NewCatalogProductDynamoRepository(clients.DynamoDB, cfg.Tables.Products)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(clients.DynamoDB, cfg.Tables.Payments)
	productRequestRepo := repository.NewProductRequestDynamoRepository(clients.DynamoDB, cfg.Tables.ProductRequests)

	if cfg.Report.QueueURL == "" {
		log.Warn().Msg("REPORT_QUEUE_URL not set, report dispatch will fail")
	}
	sender := notification.NewSQSReportSender(clients.SQS, cfg.Report.QueueURL, log)

	queryUseCase := usecase.NewOrderQueryUseCase(orderRepo, clientRepo, vehicleRepo, prom, log, cfg.Lookup.Concurrency)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, vehicleRepo, productRepo, pdf.NewMarotoOrderPDF(loc), log)
	productRequestUseCase := usecase.NewProductRequestUseCase(productRequestRepo, orderRepo, productRepo, log)
	reportUseCase := usecase.NewReportUseCase(orderRepo, queryUseCase, sender, prom, log, usecase.ReportOptions{
		Recipients:         cfg.Report.Recipients,
		NearDeadlineWindow: cfg.Report.NearDeadlineWindow,
		Location:           loc,
	})

	engine := scheduler.NewCronEngine(loc, log)
	engine.Start()
	defer func() {
		select {
		case <-engine.Stop().Done():
		case <-time.After(shutdownTimeout):
			log.Warn().Msg("report dispatch still running at shutdown")
		}
	}()
	schedulerUseCase := usecase.NewReportSchedulerUseCase(engine, reportUseCase, log, usecase.SchedulerOptions{
		Location:        loc,
		DispatchTimeout: cfg.Report.DispatchTimeout,
	})

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.Payments.MockMode {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, log)
		if err != nil {
			log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, orderRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.Payments.MockMode,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(Handlers{
		ServiceOrders:   handlers.NewServiceOrderHandler(orderUseCase, queryUseCase, log),
		ProductRequests: handlers.NewProductRequestHandler(productRequestUseCase, log),
		Reports:         handlers.NewReportHandler(reportUseCase, schedulerUseCase, log),
		Payments:        handlers.NewBillingPaymentHandler(paymentUseCase, cfg.Payments.MockMode, log),
	}, prom, log)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts middlewares, docs, metrics and the /v1 API.
func NewRouter(h Handlers, prom *metrics.Prometheus, log *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, prom, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(prom.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, h.ServiceOrders, h.ProductRequests)
	addReportRoutes(v1, h.Reports)
	addBillingRoutes(v1, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine, prom *metrics.Prometheus, log *logger.Logger) {
	log = log.Component("http")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(prom.GinMiddleware())
}
