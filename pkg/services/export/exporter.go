package export

import (
	"context"
	"time"

	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/de-tools/order-reports/pkg/workbook"
	"github.com/rs/zerolog"
)

// Result describes what an export produced.
type Result struct {
	FileName string
	Sheets   []SheetSummary
}

type SheetSummary struct {
	Name string
	Rows int
}

// ReconcilePolicy decides what ExportOrder does when an order total does not
// match subtotal - discount + shipping.
type ReconcilePolicy int

const (
	// ReconcileTrust exports the order as given.
	ReconcileTrust ReconcilePolicy = iota
	// ReconcileWarn logs the mismatch and exports anyway.
	ReconcileWarn
	// ReconcileReject fails the export.
	ReconcileReject
)

// Exporter turns report records into workbooks and hands them to a writer.
// Every call builds exactly one workbook and issues one write; nothing is
// shared between calls.
type Exporter struct {
	formatter *format.Formatter
	writer    workbook.Writer
	now       func() time.Time
	reconcile ReconcilePolicy
}

func NewExporter(formatter *format.Formatter, writer workbook.Writer) *Exporter {
	return &Exporter{
		formatter: formatter,
		writer:    writer,
		now:       time.Now,
	}
}

// WithReconcilePolicy returns a copy of the exporter using policy.
func (e *Exporter) WithReconcilePolicy(policy ReconcilePolicy) *Exporter {
	c := *e
	c.reconcile = policy
	return &c
}

// ExportOrder writes the order detail and its line items.
func (e *Exporter) ExportOrder(ctx context.Context, order domain.OrderExportRecord) (Result, error) {
	if e.reconcile != ReconcileTrust {
		if err := order.Reconcile(); err != nil {
			if e.reconcile == ReconcileReject {
				return Result{}, err
			}
			zerolog.Ctx(ctx).Warn().Err(err).Str("order", order.ID).Msg("exporting order with unreconciled total")
		}
	}
	return e.export(ctx, OrderFileName(order.ID, e.today()), orderSheets(e.formatter, order))
}

func (e *Exporter) ExportDailyReport(ctx context.Context, report domain.DailyReport) (Result, error) {
	return e.export(ctx, DailyFileName(report.Date.In(e.location())), dailySheets(e.formatter, report))
}

func (e *Exporter) ExportWeeklyReport(ctx context.Context, report domain.WeeklyReport) (Result, error) {
	period := domain.TimePeriod{
		Start: report.Period.Start.In(e.location()),
		End:   report.Period.End.In(e.location()),
	}
	return e.export(ctx, WeeklyFileName(period), weeklySheets(e.formatter, report))
}

func (e *Exporter) ExportMonthlyReport(ctx context.Context, report domain.MonthlyReport) (Result, error) {
	fileName := MonthlyFileName(e.formatter.MonthName(report.Month), report.Year)
	return e.export(ctx, fileName, monthlySheets(e.formatter, report))
}

// ExportAllOrders writes the full order list with a status breakdown.
func (e *Exporter) ExportAllOrders(ctx context.Context, list domain.OrderList) (Result, error) {
	today := e.today()
	sheets, err := allOrdersSheets(e.formatter, list, today)
	if err != nil {
		return Result{}, err
	}
	return e.export(ctx, AllOrdersFileName(today), sheets)
}

func (e *Exporter) export(ctx context.Context, fileName string, sheets []sheet) (Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", fileName).Logger()

	wb := workbook.New()
	for _, s := range sheets {
		if err := e.writer.AppendSheet(wb, s.name, s.rows); err != nil {
			logger.Error().Err(err).Str("sheet", s.name).Msg("failed to append sheet")
			return Result{}, err
		}
	}

	if err := e.writer.WriteAndDownload(ctx, wb, fileName); err != nil {
		logger.Error().Err(err).Msg("failed to write workbook")
		return Result{}, err
	}

	result := Result{FileName: fileName}
	for _, s := range wb.Sheets {
		result.Sheets = append(result.Sheets, SheetSummary{Name: s.Name, Rows: len(s.Rows)})
	}

	logger.Debug().Int("sheets", len(result.Sheets)).Msg("export complete")
	return result, nil
}

func (e *Exporter) today() time.Time {
	return e.now().In(e.location())
}

func (e *Exporter) location() *time.Location {
	return e.formatter.Locale().Location
}
