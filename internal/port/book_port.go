package port

import (
	"github.com/nikolayk812/stockbook/internal/domain"
)

// OrderBook owns the pending and fulfilled sequences. An order is in exactly
// one of them at any time, fulfilled is append-only.
type OrderBook interface {
	QueueOrder(order domain.Order)

	// ProcessNext fulfills the earliest pending order through the ledger.
	// On failure the head order stays queued for a later retry.
	ProcessNext() (domain.Receipt, error)

	Pending() []domain.Order
	Fulfilled() []domain.Order

	Search(filter domain.OrderFilter) ([]domain.Order, error)

	TotalRevenue() domain.Money
}
