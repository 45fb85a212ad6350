package config

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/govalues/decimal"
)

type Config struct {
	Database    *Database
	HTTP        *HTTP
	App         *App
	Pricing     *Pricing
	Auth        *Auth
	Idempotency *Idempotency
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Pricing struct {
	TaxRate decimal.Decimal `env:"TAX_RATE"`
}

var defaultTaxRate = decimal.MustNew(20, 2)

func parseTaxRate(v string) (any, error) {
	rate, err := decimal.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", v, err)
	}
	if rate.IsNeg() {
		return nil, fmt.Errorf("invalid tax rate %q: must not be negative", v)
	}
	return rate, nil
}

type Auth struct {
	// Key is the hex encoded PASETO v4 local key. A random key is used when empty.
	Key      string        `env:"AUTH_KEY"`
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

type Idempotency struct {
	RedisAddress string        `env:"REDIS_ADDRESS"`
	TTL          time.Duration `env:"IDEMPOTENCY_TTL"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

// parse reads flags first; environment variables override them.
func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var app App
	pricing := Pricing{TaxRate: defaultTaxRate}
	var auth Auth
	var idem Idempotency

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	fs.Func("t", "Tax rate applied after discounts (default 0.20)", func(v string) error {
		rate, err := parseTaxRate(v)
		if err != nil {
			return err
		}
		pricing.TaxRate = rate.(decimal.Decimal)
		return nil
	})
	fs.StringVar(&auth.Key, "k", "", "Token key, hex encoded")
	fs.DurationVar(&auth.TokenTTL, "token-ttl", 24*time.Hour, "Token lifetime")
	fs.StringVar(&idem.RedisAddress, "r", "", "Redis address for idempotency keys")
	fs.DurationVar(&idem.TTL, "idempotency-ttl", 24*time.Hour, "Idempotency key lifetime")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&idem)
	if err != nil {
		return nil, fmt.Errorf("error parsing idempotency config: %w", err)
	}

	err = env.ParseWithFuncs(&pricing, map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(decimal.Decimal{}): parseTaxRate,
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing pricing config: %w", err)
	}

	config := Config{
		Database:    &db,
		HTTP:        &http,
		App:         &app,
		Pricing:     &pricing,
		Auth:        &auth,
		Idempotency: &idem,
	}

	return &config, nil
}
