package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// CurrConv fetches rates from the free CurrencyConverterAPI endpoint.
// Response shape: {"<FROM>_<TO>": {"val": <rate>}}.
type CurrConv struct {
	client *resty.Client
	apiKey string
	logger *slog.Logger
}

// NewCurrConv creates a CurrConv provider rooted at baseURL.
func NewCurrConv(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *CurrConv {
	return &CurrConv{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		apiKey: apiKey,
		logger: logger,
	}
}

// Name returns the provider's name.
func (p *CurrConv) Name() string { return "currconv" }

// FetchRate fetches the unit rate for from→to.
func (p *CurrConv) FetchRate(ctx context.Context, from, to string) (float64, error) {
	pair := from + "_" + to
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":       pair,
			"compact": "ultra",
			"apiKey":  p.apiKey,
		}).
		Get("/api/v7/convert")
	if err != nil {
		return 0, connectionFailure(p.Name(), err)
	}
	if serverSide(resp) {
		return 0, connectionFailure(p.Name(), fmt.Errorf("status %d", resp.StatusCode()))
	}

	body := resp.String()
	if resp.IsError() {
		// 400 responses carry an error string that usually names the
		// rejected code.
		message := gjson.Get(body, "error").String()
		currency := namedCurrency(message, from, to)
		return 0, unsupportedFailure(p.Name(), currency,
			fmt.Errorf("status %d: %s", resp.StatusCode(), message))
	}

	val := gjson.Get(body, pair+".val")
	if !val.Exists() {
		return 0, parseFailure(p.Name(), fmt.Errorf("missing %q in response", pair))
	}
	rate := val.Float()
	if rate <= 0 {
		return 0, parseFailure(p.Name(), fmt.Errorf("non-positive rate %v for %s", rate, pair))
	}

	p.logger.Debug("rate fetched", "provider", p.Name(), "pair", pair, "rate", rate)
	return rate, nil
}

var _ Provider = (*CurrConv)(nil)
