package board

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BoardItem is one consolidated price level: the total quantity on offer
// across every order of one side at one price.
type BoardItem struct {
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerKilo int64           `json:"price_per_kilo"`
}

// Board is a point-in-time view of the live orders, merged by price per
// side. Sell levels are sorted cheapest first, buy levels highest first.
// A board never observes registrations or cancellations made after it was
// built.
type Board struct {
	SellOrders []BoardItem `json:"sell_orders"`
	BuyOrders  []BoardItem `json:"buy_orders"`
}

// BuildBoard consolidates a collection of orders into a board. It is a
// pure function of its input: quantities at the same price and side are
// summed in the order the slice supplies them, and a side with no orders
// yields an empty (non-nil) item list.
func BuildBoard(orders []*Order) Board {
	return Board{
		SellOrders: sideLevels(orders, SideSell, func(a, b int64) bool { return a < b }),
		BuyOrders:  sideLevels(orders, SideBuy, func(a, b int64) bool { return a > b }),
	}
}

func sideLevels(orders []*Order, side Side, less func(a, b int64) bool) []BoardItem {
	totals := make(map[int64]decimal.Decimal)
	prices := make([]int64, 0)

	for _, o := range orders {
		if o.Side() != side {
			continue
		}
		total, seen := totals[o.PricePerKilo()]
		if !seen {
			prices = append(prices, o.PricePerKilo())
		}
		totals[o.PricePerKilo()] = total.Add(o.Quantity())
	}

	sort.Slice(prices, func(i, j int) bool { return less(prices[i], prices[j]) })

	items := make([]BoardItem, 0, len(prices))
	for _, p := range prices {
		items = append(items, BoardItem{Quantity: totals[p], PricePerKilo: p})
	}
	return items
}
