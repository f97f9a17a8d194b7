package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents an item in the catalog
type Product struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
	Stock int             `db:"stock"`
}

// Customer represents a customer with a running spend total
type Customer struct {
	ID         int64           `db:"id"`
	Name       string          `db:"name"`
	Email      string          `db:"email"`
	Phone      string          `db:"phone"`
	TotalSpend decimal.Decimal `db:"total_spend"`
}

// Courier represents a delivery courier
type Courier struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Order represents a customer order. Customer details are a snapshot taken
// at creation time, not a foreign key; items are product names joined into
// a single delimited field.
type Order struct {
	ID              int64  `db:"id"`
	Reference       string `db:"reference"`
	CustomerName    string `db:"customer_name"`
	CustomerAddress string `db:"customer_address"`
	CustomerPhone   string `db:"customer_phone"`
	CustomerEmail   string `db:"customer_email"`
	Items           string `db:"items"`
	Status          string `db:"status"`
	CourierID       int64  `db:"courier_id"`
}

// Order statuses
const (
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCollected = "collected"
	OrderStatusAbandoned = "abandoned"
)

// ValidOrderStatus reports whether s is one of the four lifecycle labels.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusReady, OrderStatusCollected, OrderStatusAbandoned:
		return true
	}
	return false
}

const itemDelimiter = ","

// JoinItems packs item names into the stored delimited form.
func JoinItems(items []string) string {
	return strings.Join(items, itemDelimiter)
}

// SplitItems unpacks the stored delimited form back into item names.
func SplitItems(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, itemDelimiter)
}
