package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one (item, quantity) request. Quantity is a count for unit
// items and a continuous amount for bulk items, the line treats both as a
// plain decimal magnitude.
type OrderLine struct {
	Item     Item
	Quantity decimal.Decimal
}

func (l OrderLine) LineTotal() Money {
	return l.Item.PricePerUnit.Mul(l.Quantity)
}

func (l OrderLine) String() string {
	return fmt.Sprintf("%s x %s = %s", l.Item.Name, l.Quantity, l.LineTotal())
}

// Order is an immutable list of lines from one customer at one point in time.
// Lines keep their order of entry, it matters only for display.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Lines      []OrderLine

	CreatedAt time.Time
}

// Total is derived from the lines on every call, never cached.
// The currency has to be the same for all lines.
func (o Order) Total() Money {
	if len(o.Lines) == 0 {
		return Money{}
	}

	total := o.Lines[0].LineTotal()
	for _, line := range o.Lines[1:] {
		total = total.Add(line.LineTotal())
	}

	return total
}

func (o Order) String() string {
	return fmt.Sprintf("%s / %s", o.CreatedAt.Format(time.DateTime), o.Total())
}
