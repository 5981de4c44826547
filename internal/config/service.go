package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceConfig holds gym business settings.
type ServiceConfig struct {
	Environment     string            `yaml:"environment"`
	CardProvider    string            `yaml:"card_provider"`
	StripeSecretKey string            `yaml:"stripe_secret_key"`
	Currency        string            `yaml:"currency"`
	ReceiptDir      string            `yaml:"receipt_dir"`
	PlanFees        map[string]string `yaml:"plan_fees"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	FilePath    string `yaml:"file_path"`
	Development bool   `yaml:"development"`
}

// ParsePlanFees converts the configured plan fee strings into decimals.
func (c ServiceConfig) ParsePlanFees() (map[string]decimal.Decimal, error) {
	fees := make(map[string]decimal.Decimal, len(c.PlanFees))
	for plan, raw := range c.PlanFees {
		fee, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid fee for plan %q: %w", plan, err)
		}
		if fee.IsNegative() {
			return nil, fmt.Errorf("negative fee for plan %q", plan)
		}
		fees[plan] = fee
	}
	return fees, nil
}
