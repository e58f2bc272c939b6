package trm

import "context"

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type noopManager struct{}

// NewNoopManager returns a Manager for stores that apply each call atomically
// on their own, such as the in-memory repository.
func NewNoopManager() Manager {
	return noopManager{}
}

func (noopManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, noopTx{}, nil
}

func (noopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}
