package export

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/de-tools/order-reports/pkg/workbook"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	workbooks []*workbook.Workbook
	fileNames []string
}

func (w *recordingWriter) AppendSheet(wb *workbook.Workbook, name string, rows []workbook.Row) error {
	return wb.Append(name, rows)
}

func (w *recordingWriter) WriteAndDownload(_ context.Context, wb *workbook.Workbook, fileName string) error {
	w.workbooks = append(w.workbooks, wb)
	w.fileNames = append(w.fileNames, fileName)
	return nil
}

func (w *recordingWriter) last(t *testing.T) *workbook.Workbook {
	t.Helper()
	require.NotEmpty(t, w.workbooks)
	return w.workbooks[len(w.workbooks)-1]
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) AppendSheet(wb *workbook.Workbook, name string, rows []workbook.Row) error {
	args := m.Called(wb, name, rows)
	return args.Error(0)
}

func (m *mockWriter) WriteAndDownload(ctx context.Context, wb *workbook.Workbook, fileName string) error {
	args := m.Called(ctx, wb, fileName)
	return args.Error(0)
}

var (
	jakarta  = format.DefaultLocale().Location
	fixedNow = time.Date(2026, time.October, 15, 9, 0, 0, 0, jakarta)
)

func newTestExporter(w workbook.Writer) *Exporter {
	e := NewExporter(format.New(format.DefaultLocale()), w)
	e.now = func() time.Time { return fixedNow }
	return e
}

func rp(s string) string {
	return "Rp\u00a0" + s
}

func strPtr(s string) *string { return &s }

func sampleOrder(items int) domain.OrderExportRecord {
	o := domain.OrderExportRecord{
		ID: "ORD-001",
		Customer: domain.Customer{
			Name:  "Budi Santoso",
			Email: "budi@example.com",
			Phone: strPtr("081234567890"),
		},
		Subtotal:      decimal.Zero,
		Discount:      decimal.NewFromInt(10000),
		Shipping:      decimal.NewFromInt(15000),
		Status:        domain.OrderStatusPending,
		PaymentMethod: strPtr("transfer"),
		CreatedAt:     time.Date(2026, time.October, 14, 10, 15, 0, 0, jakarta),
		UpdatedAt:     time.Date(2026, time.October, 14, 11, 45, 0, 0, jakarta),
	}
	for i := 0; i < items; i++ {
		li := domain.LineItem{
			Name:     fmt.Sprintf("Kaos %d", i+1),
			Price:    decimal.NewFromInt(50000),
			Quantity: i + 1,
			Size:     "M",
		}
		o.Items = append(o.Items, li)
		o.Subtotal = o.Subtotal.Add(li.LineTotal())
	}
	o.Total = o.Subtotal.Sub(o.Discount).Add(o.Shipping)
	return o
}

// pairValue finds the value next to a label in a label/value row.
func pairValue(t *testing.T, rows []workbook.Row, label string) any {
	t.Helper()
	for _, row := range rows {
		if len(row) == 2 && row[0].Value == label {
			return row[1].Value
		}
	}
	t.Fatalf("label %q not found", label)
	return nil
}

func rowIndex(rows []workbook.Row, first any) int {
	for i, row := range rows {
		if len(row) > 0 && row[0].Value == first {
			return i
		}
	}
	return -1
}

func TestExportOrder_Sheets(t *testing.T) {
	w := &recordingWriter{}
	e := newTestExporter(w)

	result, err := e.ExportOrder(context.Background(), sampleOrder(2))
	require.NoError(t, err)

	assert.Equal(t, "Pesanan_ORD-001_2026-10-15.xlsx", result.FileName)
	assert.Equal(t, []string{"Pesanan_ORD-001_2026-10-15.xlsx"}, w.fileNames)

	wb := w.last(t)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, SheetOrderDetail, wb.Sheets[0].Name)
	assert.Equal(t, SheetOrderItems, wb.Sheets[1].Name)

	detail := wb.Sheets[0].Rows
	assert.Equal(t, workbook.Row{{Value: "DETAIL PESANAN", Style: workbook.StyleTitle}}, detail[0])
	assert.Empty(t, detail[1])
	assert.Equal(t, "ORD-001", pairValue(t, detail, "ID Pesanan"))
	assert.Equal(t, "14 Oktober 2026 pukul 10.15", pairValue(t, detail, "Tanggal Pesanan"))
	assert.Equal(t, "081234567890", pairValue(t, detail, "Telepon"))
	assert.Equal(t, "-", pairValue(t, detail, "Alamat"))
	assert.Equal(t, "transfer", pairValue(t, detail, "Metode Pembayaran"))
	assert.Equal(t, "-", pairValue(t, detail, "Status Pembayaran"))
	assert.Equal(t, "-", pairValue(t, detail, "Status Pengiriman"))
	assert.Equal(t, rp("150.000"), pairValue(t, detail, "Subtotal"))
	assert.Equal(t, rp("155.000"), pairValue(t, detail, "Total"))

	items := wb.Sheets[1].Rows
	assert.Equal(t, workbook.StyleHeader, items[0][0].Style)
	assert.Equal(t, workbook.Row{
		{Value: "Kaos 2"}, {Value: "M"}, {Value: rp("50.000")}, {Value: 2}, {Value: rp("100.000")},
	}, items[2])

	assert.Equal(t, []SheetSummary{
		{Name: SheetOrderDetail, Rows: len(detail)},
		{Name: SheetOrderItems, Rows: 3},
	}, result.Sheets)
}

func TestExportOrder_ItemsSheetHasHeaderPlusOneRowPerItem(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			w := &recordingWriter{}
			e := newTestExporter(w)

			_, err := e.ExportOrder(context.Background(), sampleOrder(n))
			require.NoError(t, err)

			items, ok := w.last(t).Sheet(SheetOrderItems)
			require.True(t, ok)
			assert.Len(t, items.Rows, n+1)
		})
	}
}

func TestExportOrder_EmptySizeRendersPlaceholder(t *testing.T) {
	w := &recordingWriter{}
	o := sampleOrder(1)
	o.Items[0].Size = ""

	_, err := newTestExporter(w).ExportOrder(context.Background(), o)
	require.NoError(t, err)

	items, _ := w.last(t).Sheet(SheetOrderItems)
	assert.Equal(t, "-", items.Rows[1][1].Value)
}

func TestExportOrder_ChangingIDOnlyChangesFileNameAndIDCell(t *testing.T) {
	w := &recordingWriter{}
	e := newTestExporter(w)

	a := sampleOrder(3)
	b := a
	b.ID = "ORD-002"

	resA, err := e.ExportOrder(context.Background(), a)
	require.NoError(t, err)
	resB, err := e.ExportOrder(context.Background(), b)
	require.NoError(t, err)

	assert.NotEqual(t, resA.FileName, resB.FileName)

	wbA, wbB := w.workbooks[0], w.workbooks[1]
	require.Equal(t, len(wbA.Sheets), len(wbB.Sheets))

	idRow := rowIndex(wbA.Sheets[0].Rows, "ID Pesanan")
	require.GreaterOrEqual(t, idRow, 0)
	for s := range wbA.Sheets {
		rowsA, rowsB := wbA.Sheets[s].Rows, wbB.Sheets[s].Rows
		require.Equal(t, len(rowsA), len(rowsB))
		for r := range rowsA {
			if s == 0 && r == idRow {
				assert.Equal(t, "ORD-001", rowsA[r][1].Value)
				assert.Equal(t, "ORD-002", rowsB[r][1].Value)
				continue
			}
			assert.Equal(t, rowsA[r], rowsB[r], "sheet %d row %d", s, r)
		}
	}

	reserved := []struct{ a, b string }{
		{"INV/2026/001", "INV-2026-001"},
		{"INV:001", "INV-001"},
		{"INV 001", "INV_001"},
		{" INV-001", "INV-001"},
		{"INV/001", "INV%2F001"},
	}
	for _, ids := range reserved {
		a.ID, b.ID = ids.a, ids.b

		resA, err := e.ExportOrder(context.Background(), a)
		require.NoError(t, err)
		resB, err := e.ExportOrder(context.Background(), b)
		require.NoError(t, err)

		assert.NotEqual(t, resA.FileName, resB.FileName, "ids %q and %q", ids.a, ids.b)
		assert.NotContains(t, resA.FileName, "/")
	}
}

func TestExportOrder_DoesNotMutateInput(t *testing.T) {
	o := sampleOrder(2)
	before := fmt.Sprintf("%+v", o)

	_, err := newTestExporter(&recordingWriter{}).ExportOrder(context.Background(), o)
	require.NoError(t, err)

	assert.Equal(t, before, fmt.Sprintf("%+v", o))
}

func TestExportOrder_ReconcilePolicy(t *testing.T) {
	o := sampleOrder(1)
	o.Total = o.Total.Add(decimal.NewFromInt(1))

	t.Run("trust", func(t *testing.T) {
		w := &recordingWriter{}
		_, err := newTestExporter(w).ExportOrder(context.Background(), o)
		assert.NoError(t, err)
		assert.Len(t, w.workbooks, 1)
	})

	t.Run("warn", func(t *testing.T) {
		w := &recordingWriter{}
		_, err := newTestExporter(w).WithReconcilePolicy(ReconcileWarn).ExportOrder(context.Background(), o)
		assert.NoError(t, err)
		assert.Len(t, w.workbooks, 1)
	})

	t.Run("reject", func(t *testing.T) {
		w := &recordingWriter{}
		_, err := newTestExporter(w).WithReconcilePolicy(ReconcileReject).ExportOrder(context.Background(), o)
		assert.ErrorIs(t, err, domain.ErrTotalMismatch)
		assert.Empty(t, w.workbooks)
	})
}

func sampleSummaries() []domain.OrderSummary {
	return []domain.OrderSummary{
		{ID: "A-1", CustomerName: "Sari", Total: decimal.NewFromInt(100000), Status: "completed",
			CreatedAt: time.Date(2026, time.October, 15, 8, 5, 0, 0, jakarta)},
		{ID: "A-2", CustomerName: "Joko", Total: decimal.NewFromInt(50000), Status: "pending",
			CreatedAt: time.Date(2026, time.October, 15, 13, 40, 0, 0, jakarta)},
	}
}

func TestExportDailyReport(t *testing.T) {
	w := &recordingWriter{}
	report := domain.DailyReport{
		Date: time.Date(2026, time.October, 15, 0, 0, 0, 0, jakarta),
		ReportTotals: domain.ReportTotals{
			TotalOrders:  2,
			TotalRevenue: decimal.NewFromInt(150000),
		},
		Orders: sampleSummaries(),
	}

	result, err := newTestExporter(w).ExportDailyReport(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, "Laporan_Harian_2026-10-15.xlsx", result.FileName)

	wb := w.last(t)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, SheetDaily, wb.Sheets[0].Name)

	rows := wb.Sheets[0].Rows
	assert.Equal(t, workbook.Row{{Value: "LAPORAN PENJUALAN HARIAN", Style: workbook.StyleTitle}}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, "15 Oktober 2026", pairValue(t, rows, "Tanggal"))
	assert.Equal(t, 2, pairValue(t, rows, LabelTotalOrders))
	assert.Equal(t, rp("150.000"), pairValue(t, rows, LabelTotalRevenue))
	assert.Equal(t, rp("75.000"), pairValue(t, rows, LabelAverageOrder))

	section := rowIndex(rows, "DAFTAR PESANAN")
	require.Greater(t, section, 0)
	assert.Empty(t, rows[section-1])
	assert.Equal(t, workbook.StyleSection, rows[section][0].Style)
	assert.Equal(t, workbook.StyleHeader, rows[section+1][0].Style)
	assert.Len(t, rows, section+2+len(report.Orders))
	assert.Equal(t, workbook.Row{
		{Value: "A-2"}, {Value: "Joko"}, {Value: rp("50.000")}, {Value: "pending"}, {Value: "15 Oktober 2026 pukul 13.40"},
	}, rows[len(rows)-1])
}

func TestExportDailyReport_ZeroOrdersAverage(t *testing.T) {
	supplied := decimal.NewFromInt(5000)

	tests := []struct {
		name    string
		average *decimal.Decimal
	}{
		{"derived", nil},
		{"supplied average ignored", &supplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}
			report := domain.DailyReport{
				Date: fixedNow,
				ReportTotals: domain.ReportTotals{
					TotalOrders:       0,
					TotalRevenue:      decimal.Zero,
					AverageOrderValue: tt.average,
				},
			}

			_, err := newTestExporter(w).ExportDailyReport(context.Background(), report)
			require.NoError(t, err)

			rows := w.last(t).Sheets[0].Rows
			assert.Equal(t, rp("0"), pairValue(t, rows, LabelAverageOrder))
		})
	}
}

func TestExportWeeklyReport(t *testing.T) {
	w := &recordingWriter{}
	avg := decimal.NewFromInt(60000)
	report := domain.WeeklyReport{
		Period: domain.TimePeriod{
			Start: time.Date(2026, time.October, 5, 0, 0, 0, 0, jakarta),
			End:   time.Date(2026, time.October, 11, 0, 0, 0, 0, jakarta),
		},
		ReportTotals: domain.ReportTotals{
			TotalOrders:       2,
			TotalRevenue:      decimal.NewFromInt(150000),
			AverageOrderValue: &avg,
		},
		Orders: sampleSummaries(),
	}

	result, err := newTestExporter(w).ExportWeeklyReport(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, "Laporan_Mingguan_2026-10-05_2026-10-11.xlsx", result.FileName)
	rows := w.last(t).Sheets[0].Rows
	assert.Equal(t, SheetWeekly, w.last(t).Sheets[0].Name)
	assert.Equal(t, "5 Oktober 2026 - 11 Oktober 2026", pairValue(t, rows, "Periode"))
	assert.Equal(t, rp("60.000"), pairValue(t, rows, LabelAverageOrder))
}

func TestExportMonthlyReport(t *testing.T) {
	w := &recordingWriter{}
	report := domain.MonthlyReport{
		Month: time.August,
		Year:  2026,
		ReportTotals: domain.ReportTotals{
			TotalOrders:  3,
			TotalRevenue: decimal.NewFromInt(100000),
		},
		Orders: sampleSummaries(),
	}

	result, err := newTestExporter(w).ExportMonthlyReport(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, "Laporan_Bulanan_Agustus_2026.xlsx", result.FileName)
	rows := w.last(t).Sheets[0].Rows
	assert.Equal(t, SheetMonthly, w.last(t).Sheets[0].Name)
	assert.Equal(t, "Agustus 2026", pairValue(t, rows, "Periode"))
	assert.Equal(t, rp("33.333"), pairValue(t, rows, LabelAverageOrder))
}

func sampleOrderList() domain.OrderList {
	created := time.Date(2026, time.October, 1, 9, 30, 0, 0, jakarta)
	return domain.OrderList{Orders: []domain.Order{
		{ID: "1", CustomerName: "Sari", Email: "sari@example.com", TotalAmount: "100000", Status: "completed", ItemCount: 2, CreatedAt: created, UpdatedAt: created},
		{ID: "2", CustomerName: "Joko", Email: "joko@example.com", TotalAmount: "50000.50", Discount: decimal.NewFromInt(5000), Status: "pending", ItemCount: 1, CreatedAt: created, UpdatedAt: created},
		{ID: "3", CustomerName: "Ani", Email: "ani@example.com", TotalAmount: "25000", Status: "cancelled", ItemCount: 1, CreatedAt: created, UpdatedAt: created},
		{ID: "4", CustomerName: "Dewi", Email: "dewi@example.com", TotalAmount: "75000", Status: "completed", ItemCount: 3, CreatedAt: created, UpdatedAt: created},
	}}
}

func TestExportAllOrders(t *testing.T) {
	w := &recordingWriter{}

	result, err := newTestExporter(w).ExportAllOrders(context.Background(), sampleOrderList())
	require.NoError(t, err)

	assert.Equal(t, "Semua_Pesanan_2026-10-15.xlsx", result.FileName)

	wb := w.last(t)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, SheetAllOrders, wb.Sheets[0].Name)

	rows := wb.Sheets[0].Rows
	assert.Equal(t, "15 Oktober 2026", pairValue(t, rows, "Tanggal Export"))
	assert.Equal(t, 4, pairValue(t, rows, LabelTotalOrders))
	assert.Equal(t, rp("250.001"), pairValue(t, rows, LabelTotalRevenue))
	assert.Equal(t, 1, pairValue(t, rows, LabelStatusPending))
	assert.Equal(t, 2, pairValue(t, rows, LabelStatusDone))
	assert.Equal(t, 1, pairValue(t, rows, LabelStatusCancel))

	breakdown := rowIndex(rows, "RINGKASAN STATUS")
	detail := rowIndex(rows, "DETAIL PESANAN")
	require.Greater(t, breakdown, 0)
	assert.Greater(t, detail, breakdown)
	assert.Len(t, rows, detail+2+4)

	assert.Equal(t, workbook.Row{
		{Value: "2"}, {Value: "Joko"}, {Value: "joko@example.com"}, {Value: rp("50.001")}, {Value: rp("5.000")},
		{Value: "pending"}, {Value: 1}, {Value: "1 Oktober 2026 pukul 09.30"}, {Value: "1 Oktober 2026 pukul 09.30"},
	}, rows[detail+3])
}

func TestExportAllOrders_InvalidAmount(t *testing.T) {
	w := &recordingWriter{}
	list := sampleOrderList()
	list.Orders[1].TotalAmount = "abc"

	_, err := newTestExporter(w).ExportAllOrders(context.Background(), list)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order 2")
	assert.Empty(t, w.workbooks)
}

func TestBreakdown_SumsToOrderCount(t *testing.T) {
	statuses := []domain.OrderStatus{"pending", "completed", "cancelled", "processing", "shipped", ""}

	for n := 0; n < 30; n++ {
		var orders []domain.Order
		for i := 0; i < n; i++ {
			orders = append(orders, domain.Order{Status: statuses[(i*7+n)%len(statuses)]})
		}

		counts := Breakdown(orders)
		assert.Equal(t, n, counts.Total())
	}
}

func TestRevenue(t *testing.T) {
	sum, err := Revenue(sampleOrderList().Orders)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250000.50").Equal(sum))

	sum, err = Revenue(nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestExport_WriterErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("unsupported cell value")
	w := new(mockWriter)
	w.On("AppendSheet", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	w.On("WriteAndDownload", mock.Anything, mock.Anything, "Laporan_Bulanan_Januari_2026.xlsx").Return(boom)

	_, err := newTestExporter(w).ExportMonthlyReport(context.Background(), domain.MonthlyReport{
		Month: time.January,
		Year:  2026,
	})

	assert.Same(t, boom, err)
	w.AssertNumberOfCalls(t, "AppendSheet", 1)
	w.AssertNumberOfCalls(t, "WriteAndDownload", 1)
}

func TestExport_AppendErrorSkipsWrite(t *testing.T) {
	boom := errors.New("bad sheet")
	w := new(mockWriter)
	w.On("AppendSheet", mock.Anything, SheetOrderDetail, mock.Anything).Return(boom)

	_, err := newTestExporter(w).ExportOrder(context.Background(), sampleOrder(1))

	assert.ErrorIs(t, err, boom)
	w.AssertNotCalled(t, "WriteAndDownload", mock.Anything, mock.Anything, mock.Anything)
}
