package port

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/stockbook/internal/domain"
	"github.com/shopspring/decimal"
)

// InventoryLedger is the only authority over on-hand stock. Absence of an
// item is equivalent to zero quantity, stored quantities are never negative.
type InventoryLedger interface {
	// AddStock applies a signed adjustment, creating the entry at zero if
	// absent. An adjustment that would leave the quantity negative is
	// rejected and changes nothing.
	AddStock(item domain.Item, quantity decimal.Decimal) error

	Quantity(itemID uuid.UUID) decimal.Decimal

	Snapshot() []domain.StockLevel
	LowStockItems(threshold decimal.Decimal) []domain.StockLevel

	// TryConsume deducts quantity from a single item, or reports false and
	// changes nothing when not enough is on hand.
	TryConsume(itemID uuid.UUID, quantity decimal.Decimal) bool

	// ConsumeOrder deducts every line of the order, or returns an
	// InsufficientStockError and changes nothing. All-or-nothing.
	ConsumeOrder(order domain.Order) error
}
