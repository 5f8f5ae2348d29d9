package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrTotalMismatch = errors.New("order total does not reconcile")

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Bucket folds a status into one of the three breakdown buckets.
// Anything that is neither completed nor cancelled is still open and
// counts as pending.
func (s OrderStatus) Bucket() OrderStatus {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(string(s)))) {
	case OrderStatusCompleted:
		return OrderStatusCompleted
	case OrderStatusCancelled:
		return OrderStatusCancelled
	default:
		return OrderStatusPending
	}
}

type Customer struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

type LineItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Size     string
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// OrderExportRecord is a single fully hydrated order as shown in the admin
// order detail page.
type OrderExportRecord struct {
	ID             string
	Customer       Customer
	Items          []LineItem
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Shipping       decimal.Decimal
	Total          decimal.Decimal
	Status         OrderStatus
	PaymentMethod  *string
	PaymentStatus  *string
	ShippingStatus *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconcile checks Total == Subtotal - Discount + Shipping.
func (o OrderExportRecord) Reconcile() error {
	expected := o.Subtotal.Sub(o.Discount).Add(o.Shipping)
	if !expected.Equal(o.Total) {
		return fmt.Errorf("%w: order %s has total %s, expected %s",
			ErrTotalMismatch, o.ID, o.Total.String(), expected.String())
	}
	return nil
}

// Order is an entry of the admin order list. TotalAmount arrives as the
// numeric string the backend serializes decimals to.
type Order struct {
	ID           string
	CustomerName string
	Email        string
	TotalAmount  string
	Discount     decimal.Decimal
	Status       OrderStatus
	ItemCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderList struct {
	Orders []Order
}
