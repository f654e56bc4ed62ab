package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Customer is a name plus an append-only log of the orders it created.
type Customer struct {
	ID   uuid.UUID
	Name string

	Orders []Order
}

func NewCustomer(name string) *Customer {
	return &Customer{
		ID:   uuid.New(),
		Name: name,
	}
}

// CreateOrder stamps the creation time, copies the given lines so the order
// cannot change through the caller's slice, appends the order to the
// customer's log and returns it for queueing. Line contents are not
// validated: empty orders, zero or negative quantities and repeated items
// are all accepted.
func (c *Customer) CreateOrder(lines []OrderLine) Order {
	order := Order{
		ID:         uuid.New(),
		CustomerID: c.ID,
		Lines:      slices.Clone(lines),
		CreatedAt:  time.Now(),
	}

	c.Orders = append(c.Orders, order)

	return order
}

func (c *Customer) String() string {
	return c.Name
}
