// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultPort         = "8080"
	defaultDispatchDays = "10"
)

// FeatureFlags gate availability of specialised certificate mappers. The
// struct is populated once at startup and passed by value wherever it is
// needed; nothing mutates it afterwards.
type FeatureFlags struct {
	LPCertificateOrders  bool
	LLPCertificateOrders bool
	Liquidation          bool
	Administration       bool
}

// Config captures all runtime configuration for the web service.
type Config struct {
	Port              string
	OrdersAPIURL      string
	DispatchDays      string
	SessionSigningKey string
	Environment       string
	DevMode           bool
	Flags             FeatureFlags
}

// Load reads configuration from the supplied lookup function (typically
// os.Getenv). Unset values fall back to development defaults; DISPATCH_DAYS
// must parse as a positive integer because it is interpolated into
// user-facing delivery copy.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:              firstNonEmpty(getenv("ORDERS_WEB_PORT"), getenv("PORT"), defaultPort),
		OrdersAPIURL:      strings.TrimSpace(getenv("ORDERS_API_URL")),
		DispatchDays:      firstNonEmpty(strings.TrimSpace(getenv("DISPATCH_DAYS")), defaultDispatchDays),
		SessionSigningKey: getenv("ORDERS_WEB_SESSION_SIGNING_KEY"),
		Environment:       strings.ToLower(getenv("ORDERS_WEB_ENV")),
		DevMode:           getenv("ORDERS_WEB_DEV") != "" || getenv("DEV") != "",
		Flags: FeatureFlags{
			LPCertificateOrders:  envBool(getenv, "LP_CERTIFICATE_ORDERS_ENABLED"),
			LLPCertificateOrders: envBool(getenv, "LLP_CERTIFICATE_ORDERS_ENABLED"),
			Liquidation:          envBool(getenv, "LIQUIDATED_COMPANY_CERTIFICATES_ENABLED"),
			Administration:       envBool(getenv, "ADMINISTRATED_COMPANY_CERTIFICATES_ENABLED"),
		},
	}
	if days, err := strconv.Atoi(cfg.DispatchDays); err != nil || days <= 0 {
		return Config{}, fmt.Errorf("config: DISPATCH_DAYS must be a positive integer, got %q", cfg.DispatchDays)
	}
	return cfg, nil
}

func envBool(getenv func(string) string, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getenv(key)))
	if err != nil {
		return false
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
