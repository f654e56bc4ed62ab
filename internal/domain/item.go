package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a catalog entry describing something sellable. Items are immutable
// once constructed and identified by ID: two items with the same name are
// still distinct catalog entries.
type Item struct {
	ID           uuid.UUID
	Name         string
	PricePerUnit Money
	Kind         ItemKind

	// Weight is the per-item weight in kg for unit items, informational only.
	Weight decimal.Decimal
	// MeasurementUnit labels the quantity for bulk items, e.g. "kg" or "m".
	MeasurementUnit string
}

// NewUnitItem builds an item sold in discrete counts.
func NewUnitItem(name string, pricePerUnit Money, weight decimal.Decimal) Item {
	return Item{
		ID:           uuid.New(),
		Name:         name,
		PricePerUnit: pricePerUnit,
		Kind:         ItemKindUnit,
		Weight:       weight,
	}
}

// NewBulkItem builds an item sold by continuous measurement.
func NewBulkItem(name string, pricePerUnit Money, measurementUnit string) Item {
	return Item{
		ID:              uuid.New(),
		Name:            name,
		PricePerUnit:    pricePerUnit,
		Kind:            ItemKindBulk,
		MeasurementUnit: measurementUnit,
	}
}

func (i Item) String() string {
	switch i.Kind {
	case ItemKindBulk:
		return fmt.Sprintf("%s (%s/%s)", i.Name, i.PricePerUnit, i.MeasurementUnit)
	case ItemKindUnit:
		return fmt.Sprintf("%s (%s/item, %s kg each)", i.Name, i.PricePerUnit, i.Weight)
	}
	return i.Name
}

// StockLevel pairs an item with its on-hand quantity in ledger snapshots.
type StockLevel struct {
	Item     Item
	Quantity decimal.Decimal
}
