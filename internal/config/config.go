package config

import (
	"time"

	"github.com/joho/godotenv"

	pkgconfig "github.com/Checker-Finance/normify/pkg/config"
)

// Config holds the runtime configuration for normify-service.
type Config struct {
	ServiceName string
	Env         string
	LogLevel    string

	Port             int
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	HTTPBodyLimit    int

	// Per remote address token bucket on the HTTP API.
	RateLimitRPS   int
	RateLimitBurst int

	// Empty NATSURL disables the NATS responder.
	NATSURL     string
	NATSSubject string
	NATSQueue   string

	// Empty RabbitMQURL disables the AMQP consumer.
	RabbitMQURL   string
	RabbitMQQueue string

	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:      pkgconfig.GetEnv("SERVICE_NAME", "normify-service"),
		Env:              pkgconfig.GetEnv("ENV", "dev"),
		LogLevel:         pkgconfig.GetEnv("LOG_LEVEL", "info"),
		Port:             pkgconfig.GetEnvInt("NORMIFY_PORT", 9040),
		HTTPReadTimeout:  pkgconfig.GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: pkgconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		HTTPIdleTimeout:  pkgconfig.GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		HTTPBodyLimit:    pkgconfig.GetEnvInt("HTTP_BODY_LIMIT", 64*1024),
		RateLimitRPS:     pkgconfig.GetEnvInt("RATE_LIMIT_RPS", 200),
		RateLimitBurst:   pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 400),
		NATSURL:          pkgconfig.GetEnv("NATS_URL", ""),
		NATSSubject:      pkgconfig.GetEnv("NATS_SUBJECT", "cmd.normify.translate.v1"),
		NATSQueue:        pkgconfig.GetEnv("NATS_QUEUE", "normify"),
		RabbitMQURL:      pkgconfig.GetEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:    pkgconfig.GetEnv("RABBITMQ_QUEUE", "normify.translate"),
		ShutdownTimeout:  pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
