package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type LineItem struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Size     string          `json:"size"`
}

type OrderExport struct {
	ID             string          `json:"id" validate:"required"`
	Customer       Customer        `json:"customer"`
	Items          []LineItem      `json:"items" validate:"dive"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Shipping       decimal.Decimal `json:"shipping"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status" validate:"required"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	PaymentStatus  *string         `json:"payment_status,omitempty"`
	ShippingStatus *string         `json:"shipping_status,omitempty"`
	CreatedAt      time.Time       `json:"created_at" validate:"required"`
	UpdatedAt      time.Time       `json:"updated_at" validate:"required"`
}

type Order struct {
	ID           string          `json:"id" validate:"required"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	TotalAmount  string          `json:"total_amount" validate:"required,numeric"`
	Discount     decimal.Decimal `json:"discount"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"item_count" validate:"gte=0"`
	CreatedAt    time.Time       `json:"created_at" validate:"required"`
	UpdatedAt    time.Time       `json:"updated_at" validate:"required"`
}

type OrderList struct {
	Orders []Order `json:"orders" validate:"dive"`
}
