package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm-console/internal/client"
	"github.com/umalmyha/crm-console/internal/config"
	"github.com/umalmyha/crm-console/internal/infra"
	"github.com/umalmyha/crm-console/internal/middleware"
	"github.com/umalmyha/crm-console/internal/session"
)

const defaultRedisConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	store, closeStore, err := sessionStore(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeStore()

	api := client.NewHTTPCustomerAPI(cfg.CrmAPICfg.URL, cfg.CrmAPICfg.Timeout)

	e, err := infra.Router(api, store, infra.RouterCfg{
		PageSize: cfg.CrmAPICfg.PageSize,
		SessionCfg: middleware.SessionCfg{
			CookieName: cfg.SessionCfg.CookieName,
			TimeToLive: cfg.SessionCfg.TimeToLive,
			Secure:     cfg.HTTPCfg.SecureCookies,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	start(e, cfg.HTTPCfg)
}

func sessionStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.SessionCfg.Store != config.SessionStoreRedis {
		logrus.Info("view models are kept in memory")
		return session.NewMemoryStore(cfg.SessionCfg.TimeToLive), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRedisConnectTimeout)
	defer cancel()

	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}

	logrus.Infof("view models are kept in redis at %s", cfg.RedisCfg.Addr)
	return session.NewRedisStore(client, cfg.SessionCfg.TimeToLive), func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("failed to close redis client - %v", err)
		}
	}, nil
}

func start(e *echo.Echo, cfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
