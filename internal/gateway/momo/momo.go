// Package momo talks to a mobile-money collection provider through hosted
// payment links. Statuses come back upper-case.
package momo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
)

const Name = "momo"

var vocabulary = gateway.Vocabulary{
	Successful: []string{"SUCCESSFUL"},
	Failed:     []string{"FAILED", "CANCELLED", "EXPIRED", "REJECTED"},
	Pending:    []string{"PENDING", "INITIATED"},
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

type paymentLinkRequest struct {
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Description       string `json:"description"`
	ExternalReference string `json:"external_reference"`
	RedirectURL       string `json:"redirect_url,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

type paymentLinkResponse struct {
	Link      string `json:"link"`
	Reference string `json:"reference"`
}

// transaction is both the status response and the webhook body.
type transaction struct {
	Reference         string      `json:"reference"`
	ExternalReference string      `json:"external_reference"`
	Status            string      `json:"status"`
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	Operator          string      `json:"operator"`
}

func (a *Adapter) InitCheckout(ctx context.Context, req gateway.CheckoutRequest) (gateway.CheckoutSession, error) {
	header, err := a.authHeader()
	if err != nil {
		return gateway.CheckoutSession{}, err
	}

	body := paymentLinkRequest{
		Amount:            strconv.FormatInt(req.Amount, 10),
		Currency:          req.Currency,
		Description:       req.Description,
		ExternalReference: req.OrderReference,
		RedirectURL:       req.ReturnURL,
		FirstName:         req.Customer.Name,
		Email:             req.Customer.Email,
		Phone:             req.Customer.Phone,
	}

	var res paymentLinkResponse
	raw, err := a.client.Do(ctx, "init_checkout", http.MethodPost, "/api/get_payment_link/", header, body, &res)
	if err != nil {
		return gateway.CheckoutSession{}, err
	}
	if res.Link == "" || res.Reference == "" {
		return gateway.CheckoutSession{}, fmt.Errorf("%w: payment link without reference", gateway.ErrTransient)
	}

	return gateway.CheckoutSession{
		PaymentURL:        res.Link,
		ExternalReference: res.Reference,
		ProviderStatus:    "PENDING",
		Raw:               raw,
	}, nil
}

func (a *Adapter) GetStatus(ctx context.Context, reference string) (gateway.Result, error) {
	header, err := a.authHeader()
	if err != nil {
		return gateway.Result{}, err
	}

	var tx transaction
	raw, err := a.client.Do(ctx, "get_status", http.MethodGet, "/api/transaction/"+url.PathEscape(reference)+"/", header, nil, &tx)
	if err != nil {
		return gateway.Result{}, err
	}
	if tx.Reference == "" {
		tx.Reference = reference
	}
	return a.result(tx, raw), nil
}

func (a *Adapter) ParseWebhook(payload []byte) (gateway.Result, error) {
	var tx transaction
	if err := json.Unmarshal(payload, &tx); err != nil {
		return gateway.Result{}, fmt.Errorf("%w: %w", gateway.ErrInvalidPayload, err)
	}
	if tx.Reference == "" && tx.ExternalReference == "" {
		return gateway.Result{}, fmt.Errorf("%w: missing reference", gateway.ErrInvalidPayload)
	}
	return a.result(tx, payload), nil
}

func (a *Adapter) result(tx transaction, raw json.RawMessage) gateway.Result {
	amount, _ := tx.Amount.Int64()
	return gateway.Result{
		Provider:          Name,
		ExternalReference: tx.Reference,
		OrderReference:    tx.ExternalReference,
		ProviderStatus:    tx.Status,
		Status:            gateway.Classify(a, tx.Status),
		Unrecognized:      !gateway.Recognized(a, tx.Status),
		Amount:            amount,
		Currency:          tx.Currency,
		Raw:               raw,
	}
}

func (a *Adapter) authHeader() (http.Header, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%w: %s api key is not set", gateway.ErrConfig, Name)
	}
	h := http.Header{}
	h.Set("Authorization", "Token "+a.apiKey)
	return h, nil
}
