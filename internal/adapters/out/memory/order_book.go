// Package memory provides an in-process implementation of the ordering ports.
//
// OrderBook keeps committed order records in memory. Mutations go through a
// UnitOfWork: Begin takes the book's single write slot, repository writes are
// staged on the unit of work, and Commit publishes them atomically. Because
// only one unit of work holds the slot at a time, mutations of an order are
// serialised, while reads through OrderBook run concurrently against the last
// committed state.
//
// Usage:
//
//	book := memory.NewOrderBook()
//	uow := memory.NewUnitOfWorkFactory(book).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// OrderBook stores committed orders. It implements ports.OrderReader.
type OrderBook struct {
	// writeSlot admits one unit of work at a time
	writeSlot chan struct{}

	mu      sync.RWMutex
	records map[kernel.UUID]orderRecord
	ids     []kernel.UUID
}

// NewOrderBook creates an empty order book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		writeSlot: make(chan struct{}, 1),
		records:   make(map[kernel.UUID]orderRecord),
	}
}

// Get returns a fresh copy of the committed order with the given id.
func (b *OrderBook) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := b.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(record)
}

// GetAll returns fresh copies of all committed orders in creation order.
func (b *OrderBook) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	records := make([]orderRecord, 0, len(b.ids))
	for _, id := range b.ids {
		records = append(records, b.records[id])
	}
	b.mu.RUnlock()

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		o, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (b *OrderBook) lookup(id kernel.UUID) (orderRecord, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.records[id]
	return record, ok
}

// acquire waits for the write slot or for ctx to be done.
func (b *OrderBook) acquire(ctx context.Context) error {
	select {
	case b.writeSlot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *OrderBook) release() {
	<-b.writeSlot
}

// apply publishes staged records. New ids are appended in staging order.
func (b *OrderBook) apply(staged []orderRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, record := range staged {
		if _, exists := b.records[record.ID]; !exists {
			b.ids = append(b.ids, record.ID)
		}
		b.records[record.ID] = record
	}
}
