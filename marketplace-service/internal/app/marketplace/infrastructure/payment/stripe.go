package payment

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var (
	// ErrGateway - признак любой ошибки Stripe, текст ошибки при этом остается сообщением Stripe
	ErrGateway = errors.New("payment gateway error")
	// ErrAmountOutOfRange - сумма в центах не помещается в int64
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// gatewayError отдает сообщение Stripe как есть и матчится с ErrGateway
type gatewayError struct {
	msg string
}

func (e *gatewayError) Error() string { return e.msg }

func (e *gatewayError) Is(target error) bool { return target == ErrGateway }

// intentCreator - часть клиента Stripe PaymentIntents, которая используется шлюзом
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeGateway struct {
	intents  intentCreator
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	sc := client.New(secretKey, nil)
	return &StripeGateway{intents: sc.PaymentIntents, currency: currency}
}

// ToCents переводит сумму в минимальные единицы валюты с отбрасыванием дробной части.
// float64(math.MaxInt64) равно 2^63, поэтому граница проверяется через >=
func ToCents(amount float64) (int64, error) {
	cents := math.Trunc(amount * 100)
	if math.IsNaN(cents) || cents >= float64(math.MaxInt64) || cents < float64(math.MinInt64) {
		return 0, ErrAmountOutOfRange
	}
	return int64(cents), nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	cents, err := ToCents(amount)
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return "", &gatewayError{msg: stripeErr.Msg}
		}
		return "", &gatewayError{msg: err.Error()}
	}

	return intent.ClientSecret, nil
}
