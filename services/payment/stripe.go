package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"intothestar/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway creates a PaymentIntent per booking and returns its id as
// the order handle.
type StripeGateway struct {
	logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, referenceID string) (string, error) {
	if config.AppConfig.StripeKey == "" {
		return "", errors.New("payment gateway not configured")
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(strings.ToLower(currency)),
	}
	params.AddMetadata("booking_id", referenceID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Info("Payment order created",
		zap.String("order", pi.ID),
		zap.String("booking", referenceID),
		zap.Int64("amount", amountMinor),
		zap.String("currency", currency),
	)
	return pi.ID, nil
}
