package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestWrapStripeErr(t *testing.T) {
	err := wrapStripeErr(&stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, string(stripe.ErrorTypeCard), providerErr.Type)
	assert.Equal(t, "Your card was declined.", providerErr.Message)
}

func TestWrapStripeErrPassthrough(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, wrapStripeErr(plain))
}

func TestToSession(t *testing.T) {
	s := toSession(&stripe.CheckoutSession{
		ID:            "cs_123",
		URL:           "https://checkout.stripe.com/pay/cs_123",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
	})

	assert.Equal(t, "cs_123", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_123", s.URL)
	assert.Equal(t, StatusPaid, s.PaymentStatus)
	assert.Equal(t, "pi_123", s.PaymentIntentID)
}

func TestToSessionWithoutIntent(t *testing.T) {
	s := toSession(&stripe.CheckoutSession{ID: "cs_123", PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid})
	assert.Empty(t, s.PaymentIntentID)
	assert.Equal(t, "unpaid", s.PaymentStatus)
}
