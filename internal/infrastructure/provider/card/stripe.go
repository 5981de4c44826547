package card

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/provider"
	"github.com/IT22898920/GYM-App-sub004/internal/metrics"
)

// StripeProcessor captures registration fees through Stripe payment
// intents. A card decline is reported as an uncaptured result, not an
// error.
type StripeProcessor struct {
	logger *zap.Logger
}

// NewStripeProcessor creates a Stripe card processor. The package-level
// Stripe key is set once by the caller at startup.
func NewStripeProcessor(secretKey string, logger *zap.Logger) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{logger: logger}
}

var _ provider.CardProcessor = (*StripeProcessor)(nil)

// Name returns the provider name.
func (p *StripeProcessor) Name() string {
	return "stripe"
}

// Capture creates and confirms a payment intent for the registration fee.
func (p *StripeProcessor) Capture(ctx context.Context, req *provider.CaptureRequest) (*provider.CaptureResult, error) {
	start := time.Now()
	defer func() {
		metrics.CardCaptureDuration.Observe(time.Since(start).Seconds())
	}()

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount.Mul(minorUnits).IntPart()),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod: stripe.String(req.CardToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.Reference)

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			p.logger.Warn("Stripe card declined",
				zap.String("reference", req.Reference),
				zap.String("decline_code", string(stripeErr.Code)))
			return &provider.CaptureResult{
				Captured:    false,
				FailureCode: string(stripeErr.Code),
			}, nil
		}

		p.logger.Error("Stripe capture failed",
			zap.String("reference", req.Reference),
			zap.Error(err))
		return nil, err
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return &provider.CaptureResult{
			Captured:    false,
			FailureCode: string(pi.Status),
		}, nil
	}

	return &provider.CaptureResult{
		Captured:      true,
		TransactionID: pi.ID,
	}, nil
}
