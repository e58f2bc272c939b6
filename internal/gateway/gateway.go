package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

var (
	// ErrConfig means the adapter cannot work as configured. Retrying is pointless.
	ErrConfig = errors.New("gateway misconfigured")
	// ErrTransient covers network failures, timeouts, 429/5xx and an open breaker.
	ErrTransient = errors.New("gateway temporarily unavailable")
	// ErrRejected is a 4xx answer that is neither auth nor rate limiting.
	ErrRejected = errors.New("gateway rejected request")

	ErrUnknownProvider = errors.New("unknown payment provider")
	ErrInvalidPayload  = errors.New("invalid gateway payload")
)

// Status is the provider-independent payment outcome.
type Status int

const (
	StatusPending Status = iota
	StatusSuccessful
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccessful:
		return "successful"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Classifier maps a provider vocabulary onto Status. Implementations must be pure.
type Classifier interface {
	IsSuccessful(native string) bool
	IsFailed(native string) bool
	IsPending(native string) bool
}

// Classify resolves native with c. Words a provider never documented stay pending
// so they can never settle an order.
func Classify(c Classifier, native string) Status {
	switch {
	case c.IsSuccessful(native):
		return StatusSuccessful
	case c.IsFailed(native):
		return StatusFailed
	default:
		return StatusPending
	}
}

// Recognized reports whether native belongs to any of the three classes.
func Recognized(c Classifier, native string) bool {
	return c.IsSuccessful(native) || c.IsFailed(native) || c.IsPending(native)
}

// Vocabulary is a Classifier built from fixed, case-insensitive word lists.
type Vocabulary struct {
	Successful []string
	Failed     []string
	Pending    []string
}

func (v Vocabulary) IsSuccessful(native string) bool { return containsFold(v.Successful, native) }
func (v Vocabulary) IsFailed(native string) bool     { return containsFold(v.Failed, native) }
func (v Vocabulary) IsPending(native string) bool    { return containsFold(v.Pending, native) }

func containsFold(words []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, w := range words {
		if strings.EqualFold(w, s) {
			return true
		}
	}
	return false
}

type CheckoutRequest struct {
	Amount         int64
	Currency       string
	Customer       entities.Customer
	OrderReference string
	Description    string
	ReturnURL      string
}

type CheckoutSession struct {
	PaymentURL        string
	ExternalReference string
	ProviderStatus    string
	Raw               json.RawMessage
}

// Result is one normalized observation of a provider transaction.
type Result struct {
	Provider          string
	ExternalReference string
	// OrderReference is the reference we sent at checkout, when the provider echoes it.
	OrderReference string
	ProviderStatus string
	Status         Status
	// Unrecognized is set when ProviderStatus is outside the documented vocabulary.
	Unrecognized bool
	Amount       int64
	Currency     string
	Raw          json.RawMessage
}

type Adapter interface {
	Name() string
	InitCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	// GetStatus asks the provider for the current truth about reference.
	GetStatus(ctx context.Context, reference string) (Result, error)
	// ParseWebhook decodes a push notification. Its content is a hint only.
	ParseWebhook(payload []byte) (Result, error)
}

type Registry struct {
	adapters map[string]Adapter
	def      string
}

func NewRegistry(defaultProvider string, adapters ...Adapter) (*Registry, error) {
	r := &Registry{
		adapters: make(map[string]Adapter, len(adapters)),
		def:      defaultProvider,
	}
	for _, a := range adapters {
		r.adapters[a.Name()] = a
	}
	if _, ok := r.adapters[defaultProvider]; !ok {
		return nil, fmt.Errorf("%w: default %q is not registered", ErrUnknownProvider, defaultProvider)
	}
	return r, nil
}

// Get returns the adapter for name, or the default one when name is empty.
func (r *Registry) Get(name string) (Adapter, error) {
	if name == "" {
		name = r.def
	}
	a, ok := r.adapters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return a, nil
}

func (r *Registry) Default() string {
	return r.def
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
