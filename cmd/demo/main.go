package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mktplace/orderboard/internal/board"
)

func main() {
	reg := board.NewRegistry()

	// A handful of sellers at overlapping prices, two buyers.
	mustRegister(reg, "user1", "3.5", 306, board.SideSell)
	mustRegister(reg, "user2", "1.2", 310, board.SideSell)
	mustRegister(reg, "user3", "1.5", 307, board.SideSell)
	mustRegister(reg, "user4", "2.0", 306, board.SideSell)
	mustRegister(reg, "user5", "3.5", 310, board.SideBuy)
	cancelled := mustRegister(reg, "user6", "9.9", 250, board.SideBuy)

	// Cancelled orders drop off the board entirely.
	reg.Cancel(cancelled)

	b := reg.Board()
	fmt.Println("SELL:")
	for _, item := range b.SellOrders {
		fmt.Printf("  %s kg for £%d\n", item.Quantity, item.PricePerKilo)
	}
	fmt.Println("BUY:")
	for _, item := range b.BuyOrders {
		fmt.Printf("  %s kg for £%d\n", item.Quantity, item.PricePerKilo)
	}
}

func mustRegister(reg *board.Registry, userID, qty string, price int64, side board.Side) uuid.UUID {
	id, err := reg.RegisterNew(userID, decimal.RequireFromString(qty), price, side)
	if err != nil {
		panic(err)
	}
	return id
}
