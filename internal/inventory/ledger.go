package inventory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/stockbook/internal/domain"
	"github.com/nikolayk812/stockbook/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the quantity below which an item counts as
// running low.
var DefaultLowStockThreshold = decimal.NewFromInt(5)

// InsufficientStockError reports the first order line whose required
// quantity exceeds what is on hand. Needed is aggregated across all lines
// of the order that reference the same item.
type InsufficientStockError struct {
	ItemName  string
	Needed    decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: needed %s, have %s", e.ItemName, e.Needed, e.Available)
}

type ledger struct {
	mu    sync.Mutex
	stock map[uuid.UUID]domain.StockLevel
}

func NewLedger() port.InventoryLedger {
	return &ledger{
		stock: make(map[uuid.UUID]domain.StockLevel),
	}
}

func (l *ledger) AddStock(item domain.Item, quantity decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.stock[item.ID]
	if !ok {
		entry = domain.StockLevel{Item: item}
	}

	next := entry.Quantity.Add(quantity)
	if next.IsNegative() {
		return fmt.Errorf("adjustment %s for %s would leave %s on hand", quantity, item.Name, next)
	}

	entry.Quantity = next
	l.stock[item.ID] = entry

	return nil
}

func (l *ledger) Quantity(itemID uuid.UUID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.stock[itemID].Quantity
}

func (l *ledger) Snapshot() []domain.StockLevel {
	l.mu.Lock()
	defer l.mu.Unlock()

	return lo.Values(l.stock)
}

func (l *ledger) LowStockItems(threshold decimal.Decimal) []domain.StockLevel {
	l.mu.Lock()
	defer l.mu.Unlock()

	return lo.Filter(lo.Values(l.stock), func(level domain.StockLevel, _ int) bool {
		return level.Quantity.LessThan(threshold)
	})
}

func (l *ledger) TryConsume(itemID uuid.UUID, quantity decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.consumeLocked(itemID, quantity)
}

// ConsumeOrder validates every line before deducting anything. Both passes
// run under one lock acquisition, so a passed validation cannot be
// invalidated before the deduction pass finishes.
func (l *ledger) ConsumeOrder(order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Requirements are aggregated per item first, so an order with two lines
	// for the same item is checked against their sum, not each line alone.
	required := make(map[uuid.UUID]decimal.Decimal, len(order.Lines))
	for _, line := range order.Lines {
		required[line.Item.ID] = required[line.Item.ID].Add(line.Quantity)
	}

	for _, line := range order.Lines {
		needed := required[line.Item.ID]
		available := l.stock[line.Item.ID].Quantity

		if available.LessThan(needed) {
			return InsufficientStockError{
				ItemName:  line.Item.Name,
				Needed:    needed,
				Available: available,
			}
		}
	}

	// Validation covered the aggregated quantities, nothing below can fail.
	for _, line := range order.Lines {
		l.consumeLocked(line.Item.ID, line.Quantity)
	}

	return nil
}

func (l *ledger) consumeLocked(itemID uuid.UUID, quantity decimal.Decimal) bool {
	entry, ok := l.stock[itemID]
	if !ok || entry.Quantity.LessThan(quantity) {
		return false
	}

	entry.Quantity = entry.Quantity.Sub(quantity)
	l.stock[itemID] = entry

	return true
}
