package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// OrderFilter has AND semantics across fields, OR semantics within each field slice
type OrderFilter struct {
	CustomerIDs []uuid.UUID
	Statuses    []OrderStatus
	CreatedAt   *TimeRange
}

func (f OrderFilter) Validate() error {
	if len(f.CustomerIDs) == 0 && len(f.Statuses) == 0 && f.CreatedAt == nil {
		return errors.New("all fields are empty")
	}

	for _, status := range f.Statuses {
		if _, err := ToOrderStatus(string(status)); err != nil {
			return fmt.Errorf("status[%s]: %w", status, err)
		}
	}

	if f.CreatedAt != nil {
		if err := f.CreatedAt.Validate(); err != nil {
			return fmt.Errorf("createdAt: %w", err)
		}
	}

	return nil
}

type TimeRange struct {
	Before *time.Time
	After  *time.Time
}

func (t TimeRange) Validate() error {
	if t.Before == nil && t.After == nil {
		return errors.New("both Before and After are nil")
	}

	if t.Before != nil && t.After != nil {
		if t.Before.Before(*t.After) {
			return fmt.Errorf("before is before After")
		}
	}

	return nil
}

// Matches reports whether the order satisfies every set field of the filter.
// Statuses are positional in the book and checked by the caller.
func (f OrderFilter) Matches(order Order) bool {
	if len(f.CustomerIDs) > 0 && !lo.Contains(f.CustomerIDs, order.CustomerID) {
		return false
	}

	if f.CreatedAt != nil {
		if f.CreatedAt.Before != nil && order.CreatedAt.After(*f.CreatedAt.Before) {
			return false
		}
		if f.CreatedAt.After != nil && order.CreatedAt.Before(*f.CreatedAt.After) {
			return false
		}
	}

	return true
}
