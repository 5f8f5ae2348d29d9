package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSummary struct {
	ID           string          `json:"id" validate:"required"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at" validate:"required"`
}

type ReportTotals struct {
	TotalOrders       int              `json:"total_orders" validate:"gte=0"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	AverageOrderValue *decimal.Decimal `json:"average_order_value,omitempty"`
}

// DailyReport dates accept either YYYY-MM-DD or RFC 3339.
type DailyReport struct {
	Date string `json:"date" validate:"required"`
	ReportTotals
	Orders []OrderSummary `json:"orders" validate:"dive"`
}

type WeeklyReport struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	ReportTotals
	Orders []OrderSummary `json:"orders" validate:"dive"`
}

type MonthlyReport struct {
	Month int `json:"month" validate:"min=1,max=12"`
	Year  int `json:"year" validate:"required,gte=1970"`
	ReportTotals
	Orders []OrderSummary `json:"orders" validate:"dive"`
}

type ReportKind struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SheetSummary struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

type ExportResult struct {
	FileName    string         `json:"file_name"`
	Destination string         `json:"destination"`
	Sheets      []SheetSummary `json:"sheets"`
}
