// Package config loads application configuration from the environment.
package config

import (
	"time"
)

type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[convobot]"`
}

type DB struct {
	Url string `envconfig:"URL"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"20"`
	Window      time.Duration `envconfig:"WINDOW" default:"1s"`
}

type CurrConv struct {
	ApiKey string `envconfig:"API_KEY"`
	ApiUrl string `envconfig:"API_URL" default:"https://free.currconv.com"`
}

type FloatRates struct {
	ApiUrl     string        `envconfig:"API_URL" default:"https://www.floatrates.com/daily"`
	StaleAfter time.Duration `envconfig:"STALE_AFTER" default:"336h"`
}

type CurrencyLayer struct {
	AccessKey string `envconfig:"ACCESS_KEY"`
	ApiUrl    string `envconfig:"API_URL" default:"http://apilayer.net/api"`
}

type Exchange struct {
	PreflightUrl     string         `envconfig:"PREFLIGHT_URL" default:"https://www.google.com"`
	PreflightTimeout time.Duration  `envconfig:"PREFLIGHT_TIMEOUT" default:"3s"`
	HTTPTimeout      time.Duration  `envconfig:"HTTP_TIMEOUT" default:"10s"`
	CurrConv         *CurrConv      `envconfig:"CURRCONV"`
	FloatRates       *FloatRates    `envconfig:"FLOATRATES"`
	CurrencyLayer    *CurrencyLayer `envconfig:"CURRENCYLAYER"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Exchange  *Exchange  `envconfig:"EXCHANGE"`
}
