package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// FloatRates fetches daily rates from floatrates.com. The feed for a base
// currency lives at /<from-lowercased>.json and keys each target by its
// lowercased code: {"eur": {"rate": <rate>, "date": <RFC1123>}}.
//
// The feed embeds a publication timestamp; entries older than staleAfter
// are rejected even though the HTTP call succeeded.
type FloatRates struct {
	client     *resty.Client
	staleAfter time.Duration
	logger     *slog.Logger
}

// NewFloatRates creates a FloatRates provider rooted at baseURL.
func NewFloatRates(baseURL string, timeout, staleAfter time.Duration, logger *slog.Logger) *FloatRates {
	return &FloatRates{
		client:     resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		staleAfter: staleAfter,
		logger:     logger,
	}
}

// Name returns the provider's name.
func (p *FloatRates) Name() string { return "floatrates" }

// FetchRate fetches the unit rate for from→to.
func (p *FloatRates) FetchRate(ctx context.Context, from, to string) (float64, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get("/" + strings.ToLower(from) + ".json")
	if err != nil {
		return 0, connectionFailure(p.Name(), err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		// No daily feed for the base currency means floatrates does not
		// know it.
		return 0, unsupportedFailure(p.Name(), from, fmt.Errorf("no feed for %s", from))
	}
	if serverSide(resp) {
		return 0, connectionFailure(p.Name(), fmt.Errorf("status %d", resp.StatusCode()))
	}
	if resp.IsError() {
		return 0, parseFailure(p.Name(), fmt.Errorf("status %d", resp.StatusCode()))
	}

	body := resp.String()
	entry := gjson.Get(body, strings.ToLower(to))
	if !entry.Exists() {
		return 0, unsupportedFailure(p.Name(), to, fmt.Errorf("%s missing from %s feed", to, from))
	}

	rate := entry.Get("rate")
	if !rate.Exists() || rate.Float() <= 0 {
		return 0, parseFailure(p.Name(), fmt.Errorf("unreadable rate for %s in %s feed", to, from))
	}

	if p.staleAfter > 0 {
		published, perr := time.Parse(time.RFC1123, entry.Get("date").String())
		if perr == nil && time.Since(published) > p.staleAfter {
			return 0, parseFailure(p.Name(),
				fmt.Errorf("rate for %s published %s is older than %s", to, published.Format(time.RFC3339), p.staleAfter))
		}
	}

	p.logger.Debug("rate fetched", "provider", p.Name(), "pair", from+"/"+to, "rate", rate.Float())
	return rate.Float(), nil
}

var _ Provider = (*FloatRates)(nil)
