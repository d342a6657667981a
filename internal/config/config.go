package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SecureCookies   bool          `env:"HTTP_SECURE_COOKIES" envDefault:"false"`
}

type CrmAPICfg struct {
	URL      string        `env:"CRM_API_URL,notEmpty"`
	Timeout  time.Duration `env:"CRM_API_TIMEOUT" envDefault:"15s"`
	PageSize int           `env:"CRM_API_PAGE_SIZE" envDefault:"10"`
}

type SessionCfg struct {
	Store      string        `env:"SESSION_STORE" envDefault:"memory"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"crm-session"`
	TimeToLive time.Duration `env:"SESSION_TIME_TO_LIVE" envDefault:"12h"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Config struct {
	HTTPCfg    HTTPCfg
	CrmAPICfg  CrmAPICfg
	SessionCfg SessionCfg
	RedisCfg   RedisCfg
	LogCfg     LogCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.CrmAPICfg.PageSize <= 0 {
		return cfg, fmt.Errorf("CRM_API_PAGE_SIZE must be positive, got %d", cfg.CrmAPICfg.PageSize)
	}

	switch cfg.SessionCfg.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return cfg, fmt.Errorf("unknown session store %q, expected %s or %s", cfg.SessionCfg.Store, SessionStoreMemory, SessionStoreRedis)
	}

	return cfg, nil
}
