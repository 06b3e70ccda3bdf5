package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/convobot/pkg/exchange/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyLayerFetchRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/live", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "USD", r.URL.Query().Get("source"))
		assert.Equal(t, "UAH", r.URL.Query().Get("currencies"))
		_, _ = w.Write([]byte(`{"success": true, "quotes": {"USDUAH": 41.25}}`))
	}))
	defer srv.Close()

	p := NewCurrencyLayer(srv.URL, "key", time.Second, testLogger())
	rate, err := p.FetchRate(context.Background(), "USD", "UAH")
	require.NoError(t, err)
	assert.InDelta(t, 41.25, rate, 1e-9)
}

func TestCurrencyLayerInvalidSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 201, "info": "invalid source currency"}}`))
	}))
	defer srv.Close()

	p := NewCurrencyLayer(srv.URL, "key", time.Second, testLogger())
	_, err := p.FetchRate(context.Background(), "XAB", "EUR")
	require.Error(t, err)

	f := failureOf(t, err)
	assert.Equal(t, core.FailureUnsupported, f.Kind)
	assert.Equal(t, "XAB", f.Currency)
}

func TestCurrencyLayerInvalidTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 202, "info": "invalid currency codes"}}`))
	}))
	defer srv.Close()

	p := NewCurrencyLayer(srv.URL, "key", time.Second, testLogger())
	_, err := p.FetchRate(context.Background(), "USD", "XAB")
	require.Error(t, err)

	f := failureOf(t, err)
	assert.Equal(t, core.FailureUnsupported, f.Kind)
	assert.Equal(t, "XAB", f.Currency)
}

func TestCurrencyLayerQuotaIsConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 104, "info": "monthly usage limit reached"}}`))
	}))
	defer srv.Close()

	p := NewCurrencyLayer(srv.URL, "key", time.Second, testLogger())
	_, err := p.FetchRate(context.Background(), "USD", "EUR")
	require.Error(t, err)
	assert.Equal(t, core.FailureConnection, failureOf(t, err).Kind)
}

func TestCurrencyLayerMissingQuoteIsParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "quotes": {}}`))
	}))
	defer srv.Close()

	p := NewCurrencyLayer(srv.URL, "key", time.Second, testLogger())
	_, err := p.FetchRate(context.Background(), "USD", "EUR")
	require.Error(t, err)
	assert.Equal(t, core.FailureParse, failureOf(t, err).Kind)
}
