// Package cardpay talks to a hosted card checkout provider: the customer is
// redirected to a checkout session page and the session carries the outcome.
package cardpay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
)

const Name = "cardpay"

var vocabulary = gateway.Vocabulary{
	Successful: []string{"complete", "succeeded", "paid"},
	Failed:     []string{"failed", "declined", "canceled", "cancelled", "expired"},
	Pending:    []string{"open", "pending", "processing", "requires_action"},
}

type Config struct {
	APIKey string
	Client gateway.ClientConfig
}

type Adapter struct {
	apiKey string
	client *gateway.Client
}

func New(cfg Config) *Adapter {
	cfg.Client.Provider = Name
	return &Adapter{
		apiKey: cfg.APIKey,
		client: gateway.NewClient(cfg.Client),
	}
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) IsSuccessful(native string) bool { return vocabulary.IsSuccessful(native) }
func (a *Adapter) IsFailed(native string) bool     { return vocabulary.IsFailed(native) }
func (a *Adapter) IsPending(native string) bool    { return vocabulary.IsPending(native) }

type customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type createSessionRequest struct {
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Reference   string   `json:"reference"`
	Description string   `json:"description,omitempty"`
	SuccessURL  string   `json:"success_url,omitempty"`
	Customer    customer `json:"customer"`
}

type session struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

type event struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	Data session `json:"data"`
}

func (a *Adapter) InitCheckout(ctx context.Context, req gateway.CheckoutRequest) (gateway.CheckoutSession, error) {
	header, err := a.authHeader()
	if err != nil {
		return gateway.CheckoutSession{}, err
	}

	body := createSessionRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Reference:   req.OrderReference,
		Description: req.Description,
		SuccessURL:  req.ReturnURL,
		Customer: customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	}

	var s session
	raw, err := a.client.Do(ctx, "init_checkout", http.MethodPost, "/v1/checkout/sessions", header, body, &s)
	if err != nil {
		return gateway.CheckoutSession{}, err
	}
	if s.ID == "" || s.URL == "" {
		return gateway.CheckoutSession{}, fmt.Errorf("%w: session without id or url", gateway.ErrTransient)
	}

	return gateway.CheckoutSession{
		PaymentURL:        s.URL,
		ExternalReference: s.ID,
		ProviderStatus:    s.Status,
		Raw:               raw,
	}, nil
}

func (a *Adapter) GetStatus(ctx context.Context, reference string) (gateway.Result, error) {
	header, err := a.authHeader()
	if err != nil {
		return gateway.Result{}, err
	}

	var s session
	raw, err := a.client.Do(ctx, "get_status", http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(reference), header, nil, &s)
	if err != nil {
		return gateway.Result{}, err
	}
	if s.ID == "" {
		s.ID = reference
	}
	return a.result(s, raw), nil
}

func (a *Adapter) ParseWebhook(payload []byte) (gateway.Result, error) {
	var e event
	if err := json.Unmarshal(payload, &e); err != nil {
		return gateway.Result{}, fmt.Errorf("%w: %w", gateway.ErrInvalidPayload, err)
	}
	if e.Data.ID == "" {
		return gateway.Result{}, fmt.Errorf("%w: missing session id", gateway.ErrInvalidPayload)
	}
	return a.result(e.Data, payload), nil
}

func (a *Adapter) result(s session, raw json.RawMessage) gateway.Result {
	return gateway.Result{
		Provider:          Name,
		ExternalReference: s.ID,
		OrderReference:    s.Reference,
		ProviderStatus:    s.Status,
		Status:            gateway.Classify(a, s.Status),
		Unrecognized:      !gateway.Recognized(a, s.Status),
		Amount:            s.Amount,
		Currency:          s.Currency,
		Raw:               raw,
	}
}

func (a *Adapter) authHeader() (http.Header, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%w: %s api key is not set", gateway.ErrConfig, Name)
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+a.apiKey)
	return h, nil
}
