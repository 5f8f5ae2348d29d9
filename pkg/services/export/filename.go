package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/order-reports/pkg/models/domain"
)

const (
	fileDateLayout = "2006-01-02"
	fileExtension  = ".xlsx"
)

// fileNameEscaper percent-encodes characters that are unsafe in file names.
// "%" is encoded too so distinct inputs never share an escaped form.
var fileNameEscaper = strings.NewReplacer(
	"%", "%25", "/", "%2F", `\`, "%5C", ":", "%3A", "*", "%2A", "?", "%3F",
	`"`, "%22", "<", "%3C", ">", "%3E", "|", "%7C", " ", "%20",
	"\t", "%09", "\n", "%0A", "\r", "%0D",
)

// OrderFileName is unique per order id and export day.
func OrderFileName(orderID string, day time.Time) string {
	return fmt.Sprintf("Pesanan_%s_%s%s", sanitize(orderID), day.Format(fileDateLayout), fileExtension)
}

func DailyFileName(date time.Time) string {
	return fmt.Sprintf("Laporan_Harian_%s%s", date.Format(fileDateLayout), fileExtension)
}

func WeeklyFileName(period domain.TimePeriod) string {
	return fmt.Sprintf("Laporan_Mingguan_%s_%s%s",
		period.Start.Format(fileDateLayout), period.End.Format(fileDateLayout), fileExtension)
}

func MonthlyFileName(monthName string, year int) string {
	return fmt.Sprintf("Laporan_Bulanan_%s_%d%s", sanitize(monthName), year, fileExtension)
}

// AllOrdersFileName only carries the day, so repeated exports on the same
// day share a name and overwrite each other.
func AllOrdersFileName(day time.Time) string {
	return fmt.Sprintf("Semua_Pesanan_%s%s", day.Format(fileDateLayout), fileExtension)
}

func sanitize(s string) string {
	return fileNameEscaper.Replace(s)
}
