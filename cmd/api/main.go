package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mecanica_os/internal/adapter/http/routes"
	"mecanica_os/internal/config"
	"mecanica_os/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mecânica O.S. API
// @version         1.0
// @description     Service orders (O.S.) for an automotive repair shop: status workflow, line items, dashboard, daily report e-mail and payments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Env: "production", Level: "error"}).Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
