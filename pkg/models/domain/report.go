package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimePeriod represents a date range covered by a report
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// OrderSummary is one row of the order table in a period report
type OrderSummary struct {
	ID           string
	CustomerName string
	Total        decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
}

// ReportTotals holds the aggregates shared by all period reports.
// AverageOrderValue is optional; when nil it is derived from the revenue.
type ReportTotals struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue *decimal.Decimal
}

// Average returns the average order value. It is zero when there are no
// orders, whatever AverageOrderValue says.
func (t ReportTotals) Average() decimal.Decimal {
	if t.TotalOrders == 0 {
		return decimal.Zero
	}
	if t.AverageOrderValue != nil {
		return *t.AverageOrderValue
	}
	return t.TotalRevenue.Div(decimal.NewFromInt(int64(t.TotalOrders)))
}

type DailyReport struct {
	Date time.Time
	ReportTotals
	Orders []OrderSummary
}

type WeeklyReport struct {
	Period TimePeriod
	ReportTotals
	Orders []OrderSummary
}

type MonthlyReport struct {
	Month time.Month
	Year  int
	ReportTotals
	Orders []OrderSummary
}
