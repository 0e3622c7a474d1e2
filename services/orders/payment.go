package orders

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentClient creates and voids payment intents for order commits.
type PaymentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (string, error)
	CancelIntent(ctx context.Context, intentID string) error
}

// StripePaymentClient implements PaymentClient with Stripe payment
// intents. The global stripe.Key is set during startup.
type StripePaymentClient struct {
	Logger *zap.Logger
}

func NewStripePaymentClient(logger *zap.Logger) *StripePaymentClient {
	return &StripePaymentClient{Logger: logger}
}

func (c *StripePaymentClient) CreateIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("payment intent creation failed: %w", err)
	}
	c.Logger.Info("payment intent created",
		zap.String("intent", intent.ID),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)
	return intent.ID, nil
}

func (c *StripePaymentClient) CancelIntent(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(intentID, params); err != nil {
		return fmt.Errorf("payment intent cancel failed: %w", err)
	}
	return nil
}
