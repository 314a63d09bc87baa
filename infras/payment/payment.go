package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"seastay/config"
	"seastay/infras/otel"
	"seastay/shared/constant"
	"seastay/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// EventTypeCheckoutCompleted is the only provider event that creates a booking.
// Every other verified event type is acknowledged and ignored.
const EventTypeCheckoutCompleted = "checkout.session.completed"

// CheckoutParams describes one hosted-payment-page session. Metadata must
// round-trip through the provider untouched: it is the only place the booking
// parameters live between checkout and webhook delivery.
type CheckoutParams struct {
	AmountMinor   int64
	ProductName   string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a verified provider notification. SessionID and Metadata are only
// populated for checkout-completed events.
type Event struct {
	Type      string
	SessionID string
	Metadata  map[string]string
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	VerifyEvent(payload []byte, signatureHeader string) (Event, error)
}

type stripeProvider struct {
	client *client.API
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Provider {
	timeout := time.Duration(cfg.External.Stripe.TimeoutSeconds) * time.Second

	api := &client.API{}
	api.Init(cfg.External.Stripe.SecretKey, stripeGo.NewBackends(&http.Client{Timeout: timeout}))

	log.Info().Msg("Stripe client initialized")

	return &stripeProvider{
		client: api,
		config: cfg,
		otel:   ot,
	}
}

func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (res CheckoutSession, err error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("payment.amount_minor", params.AmountMinor)

	sessionParams := &stripeGo.CheckoutSessionParams{
		Mode:               stripeGo.String(string(stripeGo.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripeGo.StringSlice([]string{"card"}),
		LineItems: []*stripeGo.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeGo.CheckoutSessionLineItemPriceDataParams{
					Currency: stripeGo.String(p.config.External.Stripe.Currency),
					ProductData: &stripeGo.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripeGo.String(params.ProductName),
						Description: stripeGo.String(params.Description),
					},
					UnitAmount: stripeGo.Int64(params.AmountMinor),
				},
				Quantity: stripeGo.Int64(1),
			},
		},
		SuccessURL: stripeGo.String(p.config.External.Stripe.SuccessURL),
		CancelURL:  stripeGo.String(p.config.External.Stripe.CancelURL),
	}

	if params.CustomerEmail != "" {
		sessionParams.CustomerEmail = stripeGo.String(params.CustomerEmail)
	}

	sessionParams.Context = ctx
	sessionParams.Metadata = params.Metadata

	session, err := p.client.CheckoutSessions.New(sessionParams)
	if err != nil {
		log.Error().Err(err).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// VerifyEvent checks the signature over the raw request body and fails closed
// when it does not match or cannot be parsed.
func (p *stripeProvider) VerifyEvent(payload []byte, signatureHeader string) (Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.config.External.Stripe.WebhookSecret)
	if err != nil {
		log.Error().Err(err).Msg("webhook signature verification failed")

		return Event{}, failure.BadRequest(fmt.Errorf("webhook signature verification failed: %w", err)) //nolint:wrapcheck
	}

	res := Event{Type: string(event.Type)}

	if res.Type != EventTypeCheckoutCompleted {
		return res, nil
	}

	var session stripeGo.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Error().Err(err).Msg("failed to parse checkout session from event")

		return Event{}, failure.BadRequest(fmt.Errorf("failed to parse checkout session from event: %w", err)) //nolint:wrapcheck
	}

	res.SessionID = session.ID
	res.Metadata = session.Metadata

	return res, nil
}
