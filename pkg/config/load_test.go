package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Exchange.PreflightTimeout)
	assert.Equal(t, 14*24*time.Hour, cfg.Exchange.FloatRates.StaleAfter)
	assert.Equal(t, "https://free.currconv.com", cfg.Exchange.CurrConv.ApiUrl)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("EXCHANGE_PREFLIGHT_TIMEOUT", "5s")
	t.Setenv("EXCHANGE_CURRCONV_API_KEY", "secret-key-1234")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Exchange.PreflightTimeout)
	assert.Equal(t, "secret-key-1234", cfg.Exchange.CurrConv.ApiKey)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "se****1234", maskValue("secret-key-1234"))
}
