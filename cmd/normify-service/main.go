package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"

	"github.com/Checker-Finance/normify/internal/api"
	"github.com/Checker-Finance/normify/internal/config"
	"github.com/Checker-Finance/normify/internal/jobs"
	"github.com/Checker-Finance/normify/internal/rabbitmq"
	"github.com/Checker-Finance/normify/internal/rate"
	"github.com/Checker-Finance/normify/internal/responder"
	"github.com/Checker-Finance/normify/internal/translate"
	"github.com/Checker-Finance/normify/pkg/logger"
	"github.com/Checker-Finance/normify/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Infof("starting [%s]...", cfg.ServiceName)

	svc := translate.NewService(logger.Named("translate"))
	checks := map[string]api.HealthCheck{}

	// --- NATS responder (optional) ---
	var nc *nats.Conn
	if cfg.NATSURL != "" {
		var err error
		nc, err = nats.Connect(cfg.NATSURL, nats.Name(cfg.ServiceName))
		if err != nil {
			logg.Fatalw("failed to connect to NATS", "url", utils.MaskURL(cfg.NATSURL), "error", err)
		}
		resp := responder.New(ctx, logger.Named("responder"), nc, svc, cfg.NATSSubject, cfg.NATSQueue)
		if err := resp.Start(); err != nil {
			logg.Fatalw("failed to start NATS responder", "error", err)
		}
		checks["nats"] = func() error {
			if !nc.IsConnected() {
				return errors.New("disconnected")
			}
			return nil
		}
	}

	// --- RabbitMQ consumer (optional) ---
	var consumer *rabbitmq.Consumer
	if cfg.RabbitMQURL != "" {
		var err error
		consumer, err = rabbitmq.NewConsumer(cfg.RabbitMQURL, cfg.RabbitMQQueue, svc, logger.Named("rabbitmq"))
		if err != nil {
			logg.Fatalw("failed to init RabbitMQ consumer", "url", utils.MaskURL(cfg.RabbitMQURL), "error", err)
		}
		if err := consumer.Start(ctx); err != nil {
			logg.Fatalw("failed to start RabbitMQ consumer", "error", err)
		}
		checks["rabbitmq"] = consumer.Healthy
	}

	// --- Rate limiter ---
	rateMgr := rate.NewManager(rate.Config{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	})
	sweeper := jobs.NewLimiterSweeper(logger.Named("jobs"), rateMgr, time.Minute, 10*time.Minute)
	go sweeper.Start(ctx)

	// --- Fiber HTTP Server ---
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTPReadTimeout,
		WriteTimeout:          cfg.HTTPWriteTimeout,
		IdleTimeout:           cfg.HTTPIdleTimeout,
		BodyLimit:             cfg.HTTPBodyLimit,
		DisableStartupMessage: true,
	})

	handler := api.NewHandler(logger.Named("api"), svc)
	api.RegisterRoutes(app, handler, checks, rate.Middleware(rateMgr, logger.Named("rate")))

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	logg.Infow("["+cfg.ServiceName+"] running",
		"env", cfg.Env,
		"nats", utils.MaskURL(cfg.NATSURL),
		"rabbitmq", utils.MaskURL(cfg.RabbitMQURL))

	<-ctx.Done()
	logg.Infof("shutting down [%s]...", cfg.ServiceName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Warnw("fiber.shutdown_failed", "error", err)
	}
	if nc != nil {
		if err := nc.Drain(); err != nil {
			logg.Warnw("nats.drain_failed", "error", err)
		}
	}
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logg.Warnw("rabbitmq.close_failed", "error", err)
		}
	}
}
