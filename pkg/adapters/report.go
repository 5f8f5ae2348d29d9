package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/order-reports/pkg/models/api"
	"github.com/de-tools/order-reports/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// ParseDate reads a calendar date in loc, falling back to RFC 3339.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q. Expected format: YYYY-MM-DD", value)
	}
	return t.In(loc), nil
}

func MapOrderSummaryApiToDomain(s api.OrderSummary) domain.OrderSummary {
	return domain.OrderSummary{
		ID:           s.ID,
		CustomerName: s.CustomerName,
		Total:        s.Total,
		Status:       domain.OrderStatus(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

func MapReportTotalsApiToDomain(t api.ReportTotals) domain.ReportTotals {
	return domain.ReportTotals{
		TotalOrders:       t.TotalOrders,
		TotalRevenue:      t.TotalRevenue,
		AverageOrderValue: t.AverageOrderValue,
	}
}

func mapSummaries(in []api.OrderSummary) []domain.OrderSummary {
	out := make([]domain.OrderSummary, 0, len(in))
	for _, s := range in {
		out = append(out, MapOrderSummaryApiToDomain(s))
	}
	return out
}

func MapDailyReportApiToDomain(r api.DailyReport, loc *time.Location) (domain.DailyReport, error) {
	date, err := ParseDate(r.Date, loc)
	if err != nil {
		return domain.DailyReport{}, fmt.Errorf("date: %w", err)
	}
	return domain.DailyReport{
		Date:         date,
		ReportTotals: MapReportTotalsApiToDomain(r.ReportTotals),
		Orders:       mapSummaries(r.Orders),
	}, nil
}

func MapWeeklyReportApiToDomain(r api.WeeklyReport, loc *time.Location) (domain.WeeklyReport, error) {
	start, err := ParseDate(r.StartDate, loc)
	if err != nil {
		return domain.WeeklyReport{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(r.EndDate, loc)
	if err != nil {
		return domain.WeeklyReport{}, fmt.Errorf("end_date: %w", err)
	}
	if end.Before(start) {
		return domain.WeeklyReport{}, fmt.Errorf("end_date %s is before start_date %s", r.EndDate, r.StartDate)
	}
	return domain.WeeklyReport{
		Period:       domain.TimePeriod{Start: start, End: end},
		ReportTotals: MapReportTotalsApiToDomain(r.ReportTotals),
		Orders:       mapSummaries(r.Orders),
	}, nil
}

func MapMonthlyReportApiToDomain(r api.MonthlyReport) domain.MonthlyReport {
	return domain.MonthlyReport{
		Month:        time.Month(r.Month),
		Year:         r.Year,
		ReportTotals: MapReportTotalsApiToDomain(r.ReportTotals),
		Orders:       mapSummaries(r.Orders),
	}
}

func MapReportKindDomainToApi(name, description string) api.ReportKind {
	return api.ReportKind{Name: name, Description: description}
}
