// Package store holds the order domain types used to exercise refeq-gen.
// zz_refeq_fields.go is generated from this file with -unexported.
package store

import (
	"time"
)

//go:generate go run reflection-assert/cmd/refeq-gen -pkg . -unexported

// Audit holds bookkeeping columns shared by persisted records.
type Audit struct {
	CreatedAt time.Time
	UpdatedBy string
}

// Product represents an individual item available for sale.
// Prices are in cents to avoid floating-point errors.
type Product struct {
	ID         int64
	SKU        string
	Name       string
	PriceCents int64
}

// Customer represents the user placing orders.
type Customer struct {
	ID      int64
	Email   string
	Address *string
	Labels  map[string]string

	passwordHash string
}

// Order represents a transaction made by a customer.
type Order struct {
	Audit

	ID       int64
	Customer *Customer
	Status   OrderStatus
	Items    []OrderItem
	Notes    []string
	Revision int `refeq:"-"` // bumped on every save

	checksum uint32
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice int64
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Next  string
}

type cart struct {
	owner string
	Items []OrderItem
}

// NewCustomer returns a customer with a password hash.
func NewCustomer(id int64, email, passwordHash string) *Customer {
	return &Customer{ID: id, Email: email, passwordHash: passwordHash}
}

// Seal records the checksum of the order lines.
func (o *Order) Seal() {
	var sum uint32
	for _, it := range o.Items {
		sum = sum*31 + uint32(it.ProductID)*uint32(it.Quantity)
	}

	o.checksum = sum
}

func newCart(owner string, items ...OrderItem) cart {
	return cart{owner: owner, Items: items}
}
