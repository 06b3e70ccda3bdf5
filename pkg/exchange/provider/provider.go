// Package provider implements the individual external rate sources.
//
// Each provider fetches the unit rate for a currency pair over HTTP and
// decodes its own response shape. Errors are returned as classified
// *core.Failure values so the chain can aggregate them without inspecting
// provider internals.
package provider

import (
	"context"
	"strings"

	"github.com/amirasaad/convobot/pkg/exchange/core"
	"github.com/go-resty/resty/v2"
)

// Provider is one external data source able to supply a unit conversion
// rate. Implementations are tried at most once per request by the chain.
type Provider interface {
	// Name identifies the provider in logs and failure records.
	Name() string
	// FetchRate returns the rate for one unit of from expressed in to.
	// A non-nil error is always a *core.Failure.
	FetchRate(ctx context.Context, from, to string) (float64, error)
}

// connectionFailure wraps a transport-level or server-side error.
func connectionFailure(name string, err error) *core.Failure {
	return &core.Failure{Provider: name, Kind: core.FailureConnection, Err: err}
}

// parseFailure wraps a response that arrived but could not be interpreted.
func parseFailure(name string, err error) *core.Failure {
	return &core.Failure{Provider: name, Kind: core.FailureParse, Err: err}
}

// unsupportedFailure records a semantic rejection; currency may be empty
// when the provider could not name the offending code.
func unsupportedFailure(name, currency string, err error) *core.Failure {
	return &core.Failure{Provider: name, Kind: core.FailureUnsupported, Currency: currency, Err: err}
}

// serverSide reports whether the response status indicates a failure on the
// provider's side rather than a rejection of the request.
func serverSide(resp *resty.Response) bool {
	return resp.StatusCode() >= 500
}

// namedCurrency picks which of the two request currencies an error message
// mentions, so the rejection can be attributed to a single code.
func namedCurrency(message, from, to string) string {
	upper := strings.ToUpper(message)
	if strings.Contains(upper, from) {
		return from
	}
	if strings.Contains(upper, to) {
		return to
	}
	return ""
}
