package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// CurrencyLayer fetches rates from the apilayer live endpoint. Response
// shape: {"quotes": {"<FROM><TO>": <rate>}}. The free tier is rate-limited,
// so this provider sits last in the chain.
type CurrencyLayer struct {
	client    *resty.Client
	accessKey string
	logger    *slog.Logger
}

// apilayer error codes that identify which side of the pair was rejected.
const (
	currencyLayerInvalidSource  = 201
	currencyLayerInvalidTargets = 202
	currencyLayerQuotaReached   = 104
)

// NewCurrencyLayer creates a CurrencyLayer provider rooted at baseURL.
func NewCurrencyLayer(baseURL, accessKey string, timeout time.Duration, logger *slog.Logger) *CurrencyLayer {
	return &CurrencyLayer{
		client:    resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		accessKey: accessKey,
		logger:    logger,
	}
}

// Name returns the provider's name.
func (p *CurrencyLayer) Name() string { return "currencylayer" }

// FetchRate fetches the unit rate for from→to.
func (p *CurrencyLayer) FetchRate(ctx context.Context, from, to string) (float64, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_key": p.accessKey,
			"source":     from,
			"currencies": to,
		}).
		Get("/live")
	if err != nil {
		return 0, connectionFailure(p.Name(), err)
	}
	if serverSide(resp) {
		return 0, connectionFailure(p.Name(), fmt.Errorf("status %d", resp.StatusCode()))
	}

	body := resp.String()
	if !gjson.Get(body, "success").Bool() {
		code := gjson.Get(body, "error.code").Int()
		info := gjson.Get(body, "error.info").String()
		switch code {
		case currencyLayerInvalidSource:
			return 0, unsupportedFailure(p.Name(), from, fmt.Errorf("error %d: %s", code, info))
		case currencyLayerInvalidTargets:
			return 0, unsupportedFailure(p.Name(), to, fmt.Errorf("error %d: %s", code, info))
		case currencyLayerQuotaReached:
			// Quota exhaustion is transient, not a statement about the pair.
			return 0, connectionFailure(p.Name(), fmt.Errorf("error %d: %s", code, info))
		default:
			return 0, parseFailure(p.Name(), fmt.Errorf("error %d: %s", code, info))
		}
	}

	quote := gjson.Get(body, "quotes."+from+to)
	if !quote.Exists() {
		return 0, parseFailure(p.Name(), fmt.Errorf("missing quote %s%s in response", from, to))
	}
	rate := quote.Float()
	if rate <= 0 {
		return 0, parseFailure(p.Name(), fmt.Errorf("non-positive rate %v for %s%s", rate, from, to))
	}

	p.logger.Debug("rate fetched", "provider", p.Name(), "pair", from+"/"+to, "rate", rate)
	return rate, nil
}

var _ Provider = (*CurrencyLayer)(nil)
