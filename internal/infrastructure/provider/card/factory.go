package card

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/config"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/provider"
)

// NewProcessor returns the card processor selected by config.
func NewProcessor(cfg *config.ServiceConfig, logger *zap.Logger) (provider.CardProcessor, error) {
	switch cfg.CardProvider {
	case "stripe":
		if cfg.StripeSecretKey == "" {
			return nil, fmt.Errorf("stripe secret key not configured")
		}
		return NewStripeProcessor(cfg.StripeSecretKey, logger), nil
	case "local", "":
		return NewLocalProcessor(logger), nil
	default:
		return nil, fmt.Errorf("unsupported card provider: %s", cfg.CardProvider)
	}
}
