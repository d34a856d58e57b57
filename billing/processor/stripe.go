package processor

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	portalsession "github.com/stripe/stripe-go/v82/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/subscription"

	"encore.app/billing/model"
)

// StripeClient implements Client against the Stripe API.
type StripeClient struct {
	proPriceID string
}

// NewStripeClient configures the global Stripe key and the price backing the
// pro plan.
func NewStripeClient(apiKey, proPriceID string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{proPriceID: proPriceID}
}

func (c *StripeClient) FetchSubscription(_ context.Context, externalSubscriptionID string) (*model.SubscriptionPayload, error) {
	params := &stripe.SubscriptionParams{}
	params.AddExpand("default_payment_method")
	sub, err := subscription.Get(externalSubscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("billing: fetch stripe subscription %s: %w", externalSubscriptionID, err)
	}
	return payloadFromStripe(sub), nil
}

func (c *StripeClient) CreateCheckoutSession(_ context.Context, p CheckoutParams) (string, error) {
	subData := &stripe.CheckoutSessionSubscriptionDataParams{
		Metadata: map[string]string{"organization_id": p.OrganizationID},
	}
	if p.TrialDays > 0 {
		subData.TrialPeriodDays = stripe.Int64(p.TrialDays)
	}
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(c.proPriceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: subData,
	}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	params.AddMetadata("organization_id", p.OrganizationID)

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("billing: create stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

func (c *StripeClient) CreatePortalSession(_ context.Context, externalCustomerID, returnURL string) (string, error) {
	sess, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(externalCustomerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		return "", fmt.Errorf("billing: create stripe portal session: %w", err)
	}
	return sess.URL, nil
}

func (c *StripeClient) CancelSubscription(_ context.Context, externalSubscriptionID string, atPeriodEnd bool) error {
	if atPeriodEnd {
		_, err := subscription.Update(externalSubscriptionID, &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("billing: schedule stripe cancellation %s: %w", externalSubscriptionID, err)
		}
		return nil
	}
	if _, err := subscription.Cancel(externalSubscriptionID, &stripe.SubscriptionCancelParams{}); err != nil {
		return fmt.Errorf("billing: cancel stripe subscription %s: %w", externalSubscriptionID, err)
	}
	return nil
}

// payloadFromStripe normalizes a Stripe subscription into the event payload
// shape so pulls and pushes flow through identical transition logic.
func payloadFromStripe(sub *stripe.Subscription) *model.SubscriptionPayload {
	p := &model.SubscriptionPayload{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		TrialEnd:          sub.TrialEnd,
	}
	if sub.Customer != nil {
		p.Customer = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		p.CurrentPeriodStart = sub.Items.Data[0].CurrentPeriodStart
		p.CurrentPeriodEnd = sub.Items.Data[0].CurrentPeriodEnd
	}
	if pm := sub.DefaultPaymentMethod; pm != nil && pm.Card != nil {
		p.PaymentMethod = &model.PaymentMethodSummary{
			Brand: string(pm.Card.Brand),
			Last4: pm.Card.Last4,
		}
	}
	return p
}
