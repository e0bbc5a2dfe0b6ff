package memory

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// ErrUnitOfWorkIsNotActive is returned by Commit and by repository calls made
// outside Begin/Commit.
var ErrUnitOfWorkIsNotActive = errors.New("unit of work is not active")

// UnitOfWorkFactory creates units of work over one OrderBook.
type UnitOfWorkFactory struct {
	book *OrderBook
}

// NewUnitOfWorkFactory creates a factory for units of work on book.
func NewUnitOfWorkFactory(book *OrderBook) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{book: book}
}

// Create produces a new, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{book: f.book}
}

// UnitOfWork stages order writes and publishes them to the book on Commit.
// A UnitOfWork is used by a single goroutine.
type UnitOfWork struct {
	book   *OrderBook
	active bool

	staged map[kernel.UUID]int
	order  []orderRecord
}

// Begin waits for the book's write slot. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.book.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.staged = make(map[kernel.UUID]int)
	uow.order = nil
	return nil
}

// Commit publishes all staged writes and releases the write slot.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	uow.book.apply(uow.order)
	uow.end()
	return nil
}

// Rollback discards staged writes and releases the write slot.
// It is a no-op when the unit of work is not active, e.g. after Commit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.end()
	return nil
}

// OrderRepository returns a repository whose writes are staged on this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) end() {
	uow.active = false
	uow.staged = nil
	uow.order = nil
	uow.book.release()
}

func (uow *UnitOfWork) stage(record orderRecord) {
	if i, ok := uow.staged[record.ID]; ok {
		uow.order[i] = record
		return
	}

	uow.staged[record.ID] = len(uow.order)
	uow.order = append(uow.order, record)
}

// lookup sees staged writes before committed ones.
func (uow *UnitOfWork) lookup(id kernel.UUID) (orderRecord, bool) {
	if i, ok := uow.staged[id]; ok {
		return uow.order[i], true
	}
	return uow.book.lookup(id)
}
