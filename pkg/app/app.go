// Package app wires configuration, providers, and services into a running
// bot.
package app

import (
	"log/slog"

	"github.com/amirasaad/convobot/infra/audit"
	auditpkg "github.com/amirasaad/convobot/pkg/audit"
	"github.com/amirasaad/convobot/pkg/bot"
	"github.com/amirasaad/convobot/pkg/config"
	"github.com/amirasaad/convobot/pkg/currency"
	"github.com/amirasaad/convobot/pkg/dialog"
	"github.com/amirasaad/convobot/pkg/exchange/chain"
	"github.com/amirasaad/convobot/pkg/exchange/provider"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Deps contains everything the engine and transport need.
type Deps struct {
	Catalog   *currency.Registry
	Store     *dialog.Store
	Converter bot.Converter
	Recorder  auditpkg.Recorder
	Logger    *slog.Logger
}

// App is the assembled application.
type App struct {
	Deps   *Deps
	Config *config.App
	Engine *bot.Engine
}

// New assembles the application from prepared dependencies.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		Engine: bot.New(deps.Catalog, deps.Store, deps.Converter, deps.Logger),
	}
}

// BuildDeps constructs the production dependency set: the currency catalog,
// the dialog store, the ordered provider chain, and the audit recorder.
// Without a database URL the recorder degrades to a no-op.
func BuildDeps(cfg *config.App, logger *slog.Logger) (*Deps, error) {
	ex := cfg.Exchange

	providers := []provider.Provider{
		provider.NewCurrConv(ex.CurrConv.ApiUrl, ex.CurrConv.ApiKey, ex.HTTPTimeout, logger),
		provider.NewFloatRates(ex.FloatRates.ApiUrl, ex.HTTPTimeout, ex.FloatRates.StaleAfter, logger),
		provider.NewCurrencyLayer(ex.CurrencyLayer.ApiUrl, ex.CurrencyLayer.AccessKey, ex.HTTPTimeout, logger),
	}

	converter := chain.New(chain.Config{
		PreflightURL:     ex.PreflightUrl,
		PreflightTimeout: ex.PreflightTimeout,
	}, providers, logger)

	recorder, err := buildRecorder(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Deps{
		Catalog:   currency.NewRegistry(),
		Store:     dialog.NewStore(),
		Converter: converter,
		Recorder:  recorder,
		Logger:    logger,
	}, nil
}

func buildRecorder(cfg *config.App, logger *slog.Logger) (auditpkg.Recorder, error) {
	if cfg.DB.Url == "" {
		logger.Warn("no database configured, audit records will be discarded")
		return auditpkg.NopRecorder{}, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.Url), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	repo := audit.New(db, logger)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}
