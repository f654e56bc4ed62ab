package orderbook

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/stockbook/internal/domain"
	"github.com/nikolayk812/stockbook/internal/port"
	"github.com/samber/lo"
)

var ErrEmptyQueue = errors.New("no queued orders")

type book struct {
	mu     sync.Mutex
	ledger port.InventoryLedger

	pending   []domain.Order
	fulfilled []domain.Order
}

func New(ledger port.InventoryLedger) port.OrderBook {
	return &book{
		ledger: ledger,
	}
}

func (b *book) QueueOrder(order domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, order)
}

func (b *book) ProcessNext() (domain.Receipt, error) {
	var r domain.Receipt

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) == 0 {
		return r, ErrEmptyQueue
	}

	next := b.pending[0]

	if err := b.ledger.ConsumeOrder(next); err != nil {
		// The head order stays queued, it can be retried after restocking.
		return r, fmt.Errorf("ledger.ConsumeOrder: %w", err)
	}

	b.pending = b.pending[1:]
	b.fulfilled = append(b.fulfilled, next)

	total := next.Total()

	return domain.Receipt{
		Order:   next,
		Total:   total,
		Revenue: b.revenueLocked(),
		Message: fmt.Sprintf("processed order for %s", total),
	}, nil
}

func (b *book) Pending() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.pending)
}

func (b *book) Fulfilled() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.fulfilled)
}

func (b *book) Search(filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var result []domain.Order

	byStatus := map[domain.OrderStatus][]domain.Order{
		domain.OrderStatusPending:   b.pending,
		domain.OrderStatusFulfilled: b.fulfilled,
	}

	for _, status := range []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusFulfilled} {
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, status) {
			continue
		}

		for _, order := range byStatus[status] {
			if filter.Matches(order) {
				result = append(result, order)
			}
		}
	}

	return result, nil
}

// TotalRevenue is derived from the fulfilled sequence on every call,
// never cached.
func (b *book) TotalRevenue() domain.Money {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.revenueLocked()
}

func (b *book) revenueLocked() domain.Money {
	if len(b.fulfilled) == 0 {
		return domain.Money{}
	}

	totals := lo.Map(b.fulfilled, func(order domain.Order, _ int) domain.Money {
		return order.Total()
	})

	revenue := totals[0]
	for _, total := range totals[1:] {
		revenue = revenue.Add(total)
	}

	return revenue
}
