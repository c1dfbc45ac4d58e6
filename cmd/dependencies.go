package cmd

import (
	"context"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradejournal/config"
	"tradejournal/pkg/cache"
	"tradejournal/pkg/logger"
	appMiddleware "tradejournal/pkg/middleware"
	"tradejournal/pkg/notify"
	"tradejournal/pkg/postgres"
)

type AppDependency struct {
	db        *postgres.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	hub       *notify.Hub
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(appMiddleware.NewRateLimiterMiddleware(&cfg.API))

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		db:        db,
		echo:      e,
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		hub:       notify.NewHub(),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
