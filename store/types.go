// Package store holds the purchase order model the flatmap CLI maps and the
// scaffold tests analyze.
package store

import (
	"time"

	"flatmap/entity"
)

// Customer is referenced by orders through entity.Ref.
type Customer struct {
	Email    string
	FullName string
}

// Order is a purchase order as posted by the checkout form.
type Order struct {
	Id       int                  `yaml:"id" flat:",mandatory"`
	Customer entity.Ref[Customer] `yaml:"customer"`
	Placed   time.Time            `yaml:"placed"`
	Express  bool                 `yaml:"express"`
	Status   OrderStatus          `yaml:"status"`
	Shipping Address              `yaml:"shipping"`
	Lines    []Line               `yaml:"lines"`
	Tags     []string             `yaml:"tags"`
	Coupon   *string              `yaml:"coupon,omitempty"`
}

// Address is the shipping address of an order.
type Address struct {
	Street string `yaml:"street"`
	City   string `yaml:"city"`
	Zip    string `yaml:"zip" flat:"PostalCode"`
}

// Line is one ordered product. The price is kept in cents.
type Line struct {
	Sku        string `yaml:"sku" flat:",mandatory"`
	Qty        int    `yaml:"qty"`
	PriceCents int64  `yaml:"price_cents"`
}

// OrderStatus is the processing state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		return true
	default:
		return false
	}
}
