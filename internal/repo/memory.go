package repo

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

// memoryRepo keeps everything in process. Each method is atomic on its own;
// there are no multi-call transactions, so it is meant for development and tests.
type memoryRepo struct {
	mu sync.Mutex

	orders       map[string]entities.Order
	history      map[string][]entities.OrderHistoryEntry
	transactions map[string][]entities.GatewayTransaction
	references   []entities.PaymentReference
	products     map[string]entities.Product
	flashSales   map[string]entities.FlashSaleAllocation
}

func NewMemoryRepo() *memoryRepo {
	return &memoryRepo{
		orders:       make(map[string]entities.Order),
		history:      make(map[string][]entities.OrderHistoryEntry),
		transactions: make(map[string][]entities.GatewayTransaction),
		products:     make(map[string]entities.Product),
		flashSales:   make(map[string]entities.FlashSaleAllocation),
	}
}

// PutProduct seeds the catalog.
func (r *memoryRepo) PutProduct(p entities.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

// PutFlashSaleProduct seeds a flash-sale allocation.
func (r *memoryRepo) PutFlashSaleProduct(a entities.FlashSaleAllocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flashSales[a.ID] = a
}

func (r *memoryRepo) CreateOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return nil
	}
	o.Items = slices.Clone(o.Items)
	r.orders[o.ID] = o
	return nil
}

func (r *memoryRepo) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order(id)
}

func (r *memoryRepo) order(id string) (entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = slices.Clone(o.Items)
	return o, nil
}

func (r *memoryRepo) FindOrderByNote(_ context.Context, fragment string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(fragment) == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	var found *entities.Order
	for _, o := range r.orders {
		o := o
		if !strings.Contains(o.Notes, fragment) {
			continue
		}
		if found == nil || o.CreatedAt.After(found.CreatedAt) {
			found = &o
		}
	}
	if found == nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.order(found.ID)
}

func (r *memoryRepo) UpdateStatusIf(_ context.Context, id string, from, to entities.OrderState) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok || o.State() != from {
		return false, nil
	}
	o.Status = to.Status
	o.PaymentStatus = to.PaymentStatus
	o.UpdatedAt = time.Now().UTC()
	r.orders[id] = o
	return true, nil
}

func (r *memoryRepo) AppendHistory(_ context.Context, e entities.OrderHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history[e.OrderID] = append(r.history[e.OrderID], e)
	return nil
}

func (r *memoryRepo) ListHistory(_ context.Context, orderID string) ([]entities.OrderHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.OrderHistoryEntry{}, r.history[orderID]...), nil
}

func (r *memoryRepo) AppendTransaction(_ context.Context, t entities.GatewayTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[t.OrderID] = append(r.transactions[t.OrderID], t)
	return nil
}

func (r *memoryRepo) ListTransactions(_ context.Context, orderID string) ([]entities.GatewayTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.GatewayTransaction{}, r.transactions[orderID]...), nil
}

func (r *memoryRepo) SaveReference(_ context.Context, ref entities.PaymentReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.references {
		if existing.Provider == ref.Provider && existing.ExternalReference == ref.ExternalReference {
			return nil
		}
	}
	r.references = append(r.references, ref)
	return nil
}

func (r *memoryRepo) FindReference(_ context.Context, provider, externalRef string) (entities.PaymentReference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.latestReference(func(ref entities.PaymentReference) bool {
		return ref.ExternalReference == externalRef && (provider == "" || ref.Provider == provider)
	})
}

func (r *memoryRepo) LatestReference(_ context.Context, orderID string) (entities.PaymentReference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.latestReference(func(ref entities.PaymentReference) bool {
		return ref.OrderID == orderID
	})
}

// latestReference scans backwards so the newest match wins on equal timestamps.
func (r *memoryRepo) latestReference(match func(entities.PaymentReference) bool) (entities.PaymentReference, error) {
	var (
		found entities.PaymentReference
		ok    bool
	)
	for i := len(r.references) - 1; i >= 0; i-- {
		ref := r.references[i]
		if match(ref) && (!ok || ref.CreatedAt.After(found.CreatedAt)) {
			found, ok = ref, true
		}
	}
	if !ok {
		return entities.PaymentReference{}, entities.ErrReferenceNotFound
	}
	return found, nil
}

func (r *memoryRepo) ListStalePending(_ context.Context, cutoff time.Time, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stale []entities.Order
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusPending &&
			o.PaymentStatus == entities.PaymentStatusPending &&
			!o.CreatedAt.After(cutoff) {
			stale = append(stale, o)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		return stale[i].CreatedAt.Before(stale[j].CreatedAt)
	})

	ids := make([]string, 0, len(stale))
	for _, o := range stale {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, o.ID)
	}
	return ids, nil
}

func (r *memoryRepo) GetProduct(_ context.Context, id string) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (r *memoryRepo) GetFlashSaleProduct(_ context.Context, id string) (entities.FlashSaleAllocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.flashSales[id]
	if !ok {
		return entities.FlashSaleAllocation{}, entities.ErrFlashSaleNotFound
	}
	return a, nil
}

func (r *memoryRepo) ReserveFlashSale(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.flashSales[id]
	if !ok {
		return entities.ErrFlashSaleNotFound
	}
	if a.SoldQuantity+qty > a.MaxQuantity {
		return entities.ErrInsufficientStock
	}
	p, ok := r.products[a.ProductID]
	if !ok || p.Quantity < qty {
		return entities.ErrInsufficientStock
	}

	a.SoldQuantity += qty
	p.Quantity -= qty
	r.flashSales[id] = a
	r.products[p.ID] = p
	return nil
}

func (r *memoryRepo) ReleaseFlashSale(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.flashSales[id]
	if !ok {
		return entities.ErrFlashSaleNotFound
	}
	a.SoldQuantity = max(0, a.SoldQuantity-qty)
	r.flashSales[id] = a

	if p, ok := r.products[a.ProductID]; ok {
		p.Quantity += qty
		r.products[p.ID] = p
	}
	return nil
}
