package card

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/provider"
	"github.com/IT22898920/GYM-App-sub004/internal/metrics"
)

var minorUnits = decimal.NewFromInt(100)

// LocalProcessor is a deterministic card processor for development and
// tests. Tokens prefixed "tok_declined" decline; everything else
// captures.
type LocalProcessor struct {
	logger *zap.Logger
}

// NewLocalProcessor creates a local card processor.
func NewLocalProcessor(logger *zap.Logger) *LocalProcessor {
	return &LocalProcessor{logger: logger}
}

var _ provider.CardProcessor = (*LocalProcessor)(nil)

// Name returns the provider name.
func (p *LocalProcessor) Name() string {
	return "local"
}

// Capture simulates a charge attempt.
func (p *LocalProcessor) Capture(ctx context.Context, req *provider.CaptureRequest) (*provider.CaptureResult, error) {
	start := time.Now()
	defer func() {
		metrics.CardCaptureDuration.Observe(time.Since(start).Seconds())
	}()

	if strings.HasPrefix(req.CardToken, "tok_declined") {
		p.logger.Warn("Local card declined",
			zap.String("reference", req.Reference))
		return &provider.CaptureResult{
			Captured:    false,
			FailureCode: "card_declined",
		}, nil
	}

	return &provider.CaptureResult{
		Captured:      true,
		TransactionID: "txn_" + uuid.NewString(),
	}, nil
}
