// Package chain runs an ordered list of rate providers, first success wins,
// and aggregates typed failures into one user-facing error.
package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/convobot/pkg/exchange/core"
	"github.com/amirasaad/convobot/pkg/exchange/provider"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Config controls the connectivity preflight performed before any provider
// is attempted.
type Config struct {
	PreflightURL     string
	PreflightTimeout time.Duration
}

// Chain is the ordered provider list. Provider order is a fixed priority:
// cheap or unlimited sources first, rate-limited sources last. A provider
// is tried at most once per request.
type Chain struct {
	providers []provider.Provider
	probe     *resty.Client
	url       string
	logger    *slog.Logger
}

// New creates a chain over the given providers.
func New(cfg Config, providers []provider.Provider, logger *slog.Logger) *Chain {
	timeout := cfg.PreflightTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Chain{
		providers: providers,
		probe:     resty.New().SetTimeout(timeout),
		url:       cfg.PreflightURL,
		logger:    logger,
	}
}

// Convert resolves a rate for the request and scales the amount by it.
//
// Identical-currency requests return the amount unchanged without touching
// the network. Otherwise a preflight probe runs first; if it fails no
// provider is attempted and ErrNoConnection is returned. Providers fetch
// the rate for one unit, so the amount itself never reaches the network
// layer.
func (c *Chain) Convert(ctx context.Context, req core.ConversionRequest) (decimal.Decimal, error) {
	if req.From == req.To {
		return req.Amount, nil
	}

	if err := c.preflight(ctx); err != nil {
		c.logger.Warn("preflight probe failed", "url", c.url, "error", err)
		return decimal.Zero, fmt.Errorf("%w: %w", core.ErrNoConnection, err)
	}

	failures := make([]*core.Failure, 0, len(c.providers))
	for _, p := range c.providers {
		rate, err := p.FetchRate(ctx, req.From, req.To)
		if err != nil {
			f := asFailure(p.Name(), err)
			failures = append(failures, f)
			c.logger.Warn("provider attempt failed",
				"provider", p.Name(), "pair", req.Pair(), "kind", f.Kind.String(), "error", err)
			continue
		}

		c.logger.Info("provider attempt succeeded",
			"provider", p.Name(), "pair", req.Pair(), "rate", rate)
		return req.Amount.Mul(decimal.NewFromFloat(rate)), nil
	}

	return decimal.Zero, aggregate(req, failures)
}

// preflight probes a known-reachable host. Any response, whatever the
// status, proves connectivity; only a transport error counts as offline.
func (c *Chain) preflight(ctx context.Context) error {
	if c.url == "" {
		return nil
	}
	_, err := c.probe.R().SetContext(ctx).Get(c.url)
	return err
}

// aggregate picks one error by priority: a connection failure anywhere
// outranks semantic rejection; a rejection that names a single currency
// outranks the generic pair message. Parse failures rank with Unsupported.
func aggregate(req core.ConversionRequest, failures []*core.Failure) error {
	if len(failures) == 0 {
		return &core.UnsupportedPairError{From: req.From, To: req.To}
	}

	for _, f := range failures {
		if f.Kind == core.FailureConnection {
			return fmt.Errorf("%w: %w", core.ErrServerNotResponding, f)
		}
	}
	for _, f := range failures {
		if f.Currency != "" {
			return &core.UnsupportedCurrencyError{Currency: f.Currency}
		}
	}
	return &core.UnsupportedPairError{From: req.From, To: req.To}
}

// asFailure normalizes provider errors; providers return *core.Failure
// already, anything else is treated as a connection-class problem.
func asFailure(name string, err error) *core.Failure {
	var f *core.Failure
	if errors.As(err, &f) {
		return f
	}
	return &core.Failure{Provider: name, Kind: core.FailureConnection, Err: err}
}
