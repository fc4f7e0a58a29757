package models

import "time"

// OrderItem is a catalog snapshot taken at add-to-cart time. Later
// catalog edits never affect historical orders.
type OrderItem struct {
	DrinkID   string  `json:"drinkId"`
	DrinkName string  `json:"drinkName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Order is immutable once appended to the ledger.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Date      time.Time   `json:"date"`
	AgentID   string      `json:"agentId"`
	AgentName string      `json:"agentName"`
	Completed bool        `json:"completed"`
}

// Revenue is derived from the order ledger on every read, never stored.
type Revenue struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// TopProduct aggregates one drink's sales across all orders.
type TopProduct struct {
	DrinkID  string  `json:"drinkId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
