package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the service configuration, read through viper from the
// environment and, optionally, a .env / config.env file. Env vars win.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Report   ReportConfig
	Lookup   LookupConfig
	Payments PaymentsConfig
}

type AppConfig struct {
	Env      string // development, staging, production
	LogLevel string
}

type HTTPConfig struct {
	Port int
}

// Addr is the gin listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AWSConfig holds credentials and optional local endpoints (DynamoDB Local,
// ElasticMQ/LocalStack). Local emulators do not validate credentials.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	SQSEndpoint      string
}

type TablesConfig struct {
	ServiceOrders   string
	Clients         string
	Vehicles        string
	Products        string
	Payments        string
	ProductRequests string
}

// ReportConfig drives the daily report dispatch.
type ReportConfig struct {
	QueueURL           string
	Recipients         []string
	Timezone           string
	NearDeadlineWindow time.Duration
	DispatchTimeout    time.Duration
}

// Location resolves Timezone, falling back to UTC when unknown.
func (c ReportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type LookupConfig struct {
	Concurrency int
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	TestPayerEmail         string
	TestPayerUserID        string
	MockMode               bool
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AWS: AWSConfig{
			Region:           getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:      getString(v, "AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getString(v, "AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getString(v, "DYNAMODB_ENDPOINT", ""),
			SQSEndpoint:      getString(v, "SQS_ENDPOINT", ""),
		},
		Tables: TablesConfig{
			ServiceOrders:   getString(v, "SERVICE_ORDERS_TABLE", "service_orders"),
			Clients:         getString(v, "CLIENTS_TABLE", "clients"),
			Vehicles:        getString(v, "VEHICLES_TABLE", "vehicles"),
			Products:        getString(v, "PRODUCTS_TABLE", "products"),
			Payments:        getString(v, "PAYMENTS_TABLE", "payments"),
			ProductRequests: getString(v, "PRODUCT_REQUESTS_TABLE", "product_requests"),
		},
		Report: ReportConfig{
			QueueURL:           getString(v, "REPORT_QUEUE_URL", ""),
			Recipients:         splitList(getString(v, "REPORT_RECIPIENTS", "")),
			Timezone:           getString(v, "REPORT_TIMEZONE", "America/Sao_Paulo"),
			NearDeadlineWindow: time.Duration(getInt(v, "REPORT_NEAR_DEADLINE_HOURS", 48)) * time.Hour,
			DispatchTimeout:    time.Duration(getInt(v, "REPORT_DISPATCH_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Lookup: LookupConfig{
			Concurrency: getInt(v, "LOOKUP_CONCURRENCY", 8),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: getString(v, "MERCADOPAGO_ACCESS_TOKEN", ""),
			TestPayerEmail:         getString(v, "MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID:        getString(v, "MERCADOPAGO_TEST_PAYER_USER_ID", ""),
			MockMode:               getBool(v, "PAYMENT_GATEWAY_MOCK", false) || getBool(v, "MERCADOPAGO_MOCK", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTP.Port)
	}
	if c.Lookup.Concurrency <= 0 {
		return fmt.Errorf("config: LOOKUP_CONCURRENCY must be positive: %d", c.Lookup.Concurrency)
	}
	if c.Report.NearDeadlineWindow <= 0 {
		return fmt.Errorf("config: REPORT_NEAR_DEADLINE_HOURS must be positive")
	}
	if c.Report.DispatchTimeout <= 0 {
		return fmt.Errorf("config: REPORT_DISPATCH_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return strings.TrimSpace(v.GetString(key))
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

// getBool also accepts the "yes", "on" and "mock" spellings used by the
// payment mock switch.
func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "":
		return def
	default:
		return false
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
