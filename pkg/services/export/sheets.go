package export

import (
	"time"

	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/de-tools/order-reports/pkg/workbook"
)

const (
	SheetOrderDetail = "Detail Pesanan"
	SheetOrderItems  = "Item Pesanan"
	SheetDaily       = "Laporan Harian"
	SheetWeekly      = "Laporan Mingguan"
	SheetMonthly     = "Laporan Bulanan"
	SheetAllOrders   = "Semua Pesanan"
)

const (
	LabelTotalOrders   = "Total Pesanan"
	LabelTotalRevenue  = "Total Pendapatan"
	LabelAverageOrder  = "Rata-rata per Pesanan"
	LabelStatusPending = "Pending"
	LabelStatusDone    = "Selesai"
	LabelStatusCancel  = "Dibatalkan"
)

type sheet struct {
	name string
	rows []workbook.Row
}

var itemsHeader = []string{"Nama Produk", "Ukuran", "Harga Satuan", "Jumlah", "Total"}

func orderSheets(f *format.Formatter, o domain.OrderExportRecord) []sheet {
	detail := &workbook.Grid{}
	detail.Title("DETAIL PESANAN").
		Blank().
		Pair("ID Pesanan", o.ID).
		Pair("Tanggal Pesanan", f.DateTime(o.CreatedAt)).
		Pair("Terakhir Diperbarui", f.DateTime(o.UpdatedAt)).
		Pair("Status Pesanan", string(o.Status)).
		Blank().
		Section("INFORMASI PELANGGAN").
		Pair("Nama", o.Customer.Name).
		Pair("Email", o.Customer.Email).
		Pair("Telepon", format.Optional(o.Customer.Phone)).
		Pair("Alamat", format.Optional(o.Customer.Address)).
		Blank().
		Section("INFORMASI PEMBAYARAN").
		Pair("Metode Pembayaran", format.Optional(o.PaymentMethod)).
		Pair("Status Pembayaran", format.Optional(o.PaymentStatus)).
		Pair("Status Pengiriman", format.Optional(o.ShippingStatus)).
		Blank().
		Section("RINGKASAN BIAYA").
		Pair("Jumlah Item", len(o.Items)).
		Pair("Subtotal", f.Price(o.Subtotal)).
		Pair("Diskon", f.Price(o.Discount)).
		Pair("Ongkos Kirim", f.Price(o.Shipping)).
		Pair("Total", f.Price(o.Total))

	items := &workbook.Grid{}
	items.Header(itemsHeader...)
	for _, item := range o.Items {
		size := item.Size
		if size == "" {
			size = format.Placeholder
		}
		items.Values(item.Name, size, f.Price(item.Price), item.Quantity, f.Price(item.LineTotal()))
	}

	return []sheet{
		{name: SheetOrderDetail, rows: detail.Rows()},
		{name: SheetOrderItems, rows: items.Rows()},
	}
}

func dailySheets(f *format.Formatter, r domain.DailyReport) []sheet {
	rows := periodRows(f, "LAPORAN PENJUALAN HARIAN", []label{
		{"Tanggal", f.Date(r.Date)},
	}, r.ReportTotals, r.Orders)
	return []sheet{{name: SheetDaily, rows: rows}}
}

func weeklySheets(f *format.Formatter, r domain.WeeklyReport) []sheet {
	rows := periodRows(f, "LAPORAN PENJUALAN MINGGUAN", []label{
		{"Periode", f.Date(r.Period.Start) + " - " + f.Date(r.Period.End)},
	}, r.ReportTotals, r.Orders)
	return []sheet{{name: SheetWeekly, rows: rows}}
}

func monthlySheets(f *format.Formatter, r domain.MonthlyReport) []sheet {
	rows := periodRows(f, "LAPORAN PENJUALAN BULANAN", []label{
		{"Periode", f.Month(r.Month, r.Year)},
	}, r.ReportTotals, r.Orders)
	return []sheet{{name: SheetMonthly, rows: rows}}
}

type label struct {
	name  string
	value any
}

var summaryHeader = []string{"ID Pesanan", "Pelanggan", "Total", "Status", "Waktu Pesanan"}

func periodRows(
	f *format.Formatter,
	title string,
	period []label,
	totals domain.ReportTotals,
	orders []domain.OrderSummary,
) []workbook.Row {
	g := &workbook.Grid{}
	g.Title(title).Blank()
	for _, l := range period {
		g.Pair(l.name, l.value)
	}
	g.Pair(LabelTotalOrders, totals.TotalOrders).
		Pair(LabelTotalRevenue, f.Price(totals.TotalRevenue)).
		Pair(LabelAverageOrder, f.Price(totals.Average())).
		Blank().
		Section("DAFTAR PESANAN").
		Header(summaryHeader...)

	for _, o := range orders {
		g.Values(o.ID, o.CustomerName, f.Price(o.Total), string(o.Status), f.DateTime(o.CreatedAt))
	}
	return g.Rows()
}

var allOrdersHeader = []string{
	"ID Pesanan", "Pelanggan", "Email", "Total", "Diskon",
	"Status", "Jumlah Item", "Tanggal Dibuat", "Terakhir Diperbarui",
}

func allOrdersSheets(f *format.Formatter, list domain.OrderList, today time.Time) ([]sheet, error) {
	revenue, err := Revenue(list.Orders)
	if err != nil {
		return nil, err
	}
	counts := Breakdown(list.Orders)

	g := &workbook.Grid{}
	g.Title("LAPORAN SEMUA PESANAN").
		Blank().
		Pair("Tanggal Export", f.Date(today)).
		Pair(LabelTotalOrders, len(list.Orders)).
		Pair(LabelTotalRevenue, f.Price(revenue)).
		Blank().
		Section("RINGKASAN STATUS").
		Pair(LabelStatusPending, counts.Pending).
		Pair(LabelStatusDone, counts.Completed).
		Pair(LabelStatusCancel, counts.Cancelled).
		Blank().
		Section("DETAIL PESANAN").
		Header(allOrdersHeader...)

	for _, o := range list.Orders {
		amount, err := parseAmount(o)
		if err != nil {
			return nil, err
		}
		g.Values(
			o.ID,
			o.CustomerName,
			o.Email,
			f.Price(amount),
			f.Price(o.Discount),
			string(o.Status),
			o.ItemCount,
			f.DateTime(o.CreatedAt),
			f.DateTime(o.UpdatedAt),
		)
	}

	return []sheet{{name: SheetAllOrders, rows: g.Rows()}}, nil
}
