package main

import (
	"errors"
	"log"

	"github.com/nikolayk812/stockbook/internal/domain"
	"github.com/nikolayk812/stockbook/internal/inventory"
	"github.com/nikolayk812/stockbook/internal/orderbook"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func main() {
	pen := domain.NewUnitItem("Blue Pen", usd("1.50"), decimal.RequireFromString("0.02"))
	cable := domain.NewUnitItem("USB-C Cable", usd("9.99"), decimal.RequireFromString("0.08"))
	paper := domain.NewUnitItem("A4 Paper (100)", usd("5.49"), decimal.RequireFromString("0.6"))
	gravel := domain.NewBulkItem("Construction Gravel", usd("20.00"), "kg")

	ledger := inventory.NewLedger()
	for _, seed := range []struct {
		item     domain.Item
		quantity int64
	}{
		{pen, 12},
		{cable, 30},
		{paper, 50},
		{gravel, 20}, // kg
	} {
		if err := ledger.AddStock(seed.item, decimal.NewFromInt(seed.quantity)); err != nil {
			log.Fatalf("add stock for %s: %v", seed.item.Name, err)
		}
	}

	alex := domain.NewCustomer("Alex Smith")
	bella := domain.NewCustomer("Bella Cruz")
	chen := domain.NewCustomer("Chen Li")

	book := orderbook.New(ledger)
	book.QueueOrder(alex.CreateOrder([]domain.OrderLine{
		{Item: pen, Quantity: decimal.NewFromInt(3)},
		{Item: paper, Quantity: decimal.NewFromInt(10)},
	}))
	book.QueueOrder(bella.CreateOrder([]domain.OrderLine{
		{Item: cable, Quantity: decimal.NewFromInt(5)},
		{Item: gravel, Quantity: decimal.NewFromInt(8)}, // kg
	}))
	book.QueueOrder(chen.CreateOrder([]domain.OrderLine{
		{Item: pen, Quantity: decimal.NewFromInt(6)},
		{Item: gravel, Quantity: decimal.NewFromInt(12)}, // kg
	}))

	for {
		receipt, err := book.ProcessNext()
		if err != nil {
			if errors.Is(err, orderbook.ErrEmptyQueue) {
				break
			}
			log.Fatalf("process next: %v", err)
		}

		log.Printf("%s, revenue %s", receipt.Message, receipt.Revenue)
	}

	log.Printf("total revenue: %s", book.TotalRevenue())

	for _, level := range ledger.LowStockItems(inventory.DefaultLowStockThreshold) {
		log.Printf("low stock: %s: %s", level.Item.Name, level.Quantity)
	}

	for _, level := range ledger.Snapshot() {
		log.Printf("on hand: %s: %s", level.Item.Name, level.Quantity)
	}
}

func usd(amount string) domain.Money {
	return domain.Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.USD,
	}
}
