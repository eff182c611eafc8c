package payment

import (
	"context"
	"fmt"

	apperrors "mela-ticketing/pkg/app_errors"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("%w: order id missing in response", apperrors.ErrPaymentGateway)
	}

	return orderID, nil
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
