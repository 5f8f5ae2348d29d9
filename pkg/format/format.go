package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered for optional fields that are absent.
const Placeholder = "-"

const nbsp = "\u00a0"

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// DefaultLocale is the storefront locale: Indonesian rupiah, WIB.
func DefaultLocale() domain.Locale {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return domain.Locale{
		Tag:      language.Indonesian,
		Currency: currency.IDR,
		Symbol:   "Rp",
		Location: loc,
	}
}

// Formatter renders values into display strings for a fixed locale.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	locale  domain.Locale
	printer *message.Printer
	group   string
	names   calendar
}

func New(locale domain.Locale) *Formatter {
	if locale.Location == nil {
		locale.Location = time.UTC
	}
	printer := message.NewPrinter(locale.Tag)
	return &Formatter{
		locale:  locale,
		printer: printer,
		group:   groupSeparator(printer),
		names:   calendarFor(locale.Tag),
	}
}

func (f *Formatter) Locale() domain.Locale {
	return f.locale
}

// Price renders an amount with the currency symbol and no fractional digits.
func (f *Formatter) Price(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + f.symbol() + nbsp + f.integer(rounded)
}

// integer groups the digits of a non-negative whole amount. Amounts past
// int64 are grouped from their decimal string instead of IntPart, which wraps.
func (f *Formatter) integer(d decimal.Decimal) string {
	if d.LessThanOrEqual(maxInt64) {
		return f.printer.Sprintf("%d", d.IntPart())
	}
	return groupDigits(d.String(), f.group)
}

// Count renders an integer with locale digit grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Date renders a date-only label, e.g. "15 Oktober 2026".
func (f *Formatter) Date(t time.Time) string {
	t = t.In(f.locale.Location)
	return fmt.Sprintf("%d %s %d", t.Day(), f.names.months[t.Month()-1], t.Year())
}

// DateTime renders a timestamp, e.g. "15 Oktober 2026 pukul 14.30".
func (f *Formatter) DateTime(t time.Time) string {
	t = t.In(f.locale.Location)
	return fmt.Sprintf("%s %s %02d%s%02d",
		f.Date(t), f.names.at, t.Hour(), f.names.clockSep, t.Minute())
}

// Month renders a month label, e.g. "Oktober 2026".
func (f *Formatter) Month(m time.Month, year int) string {
	return fmt.Sprintf("%s %d", f.MonthName(m), year)
}

func (f *Formatter) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return fmt.Sprintf("%%!Month(%d)", m)
	}
	return f.names.months[m-1]
}

// Optional renders a possibly absent string field.
func Optional(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

func (f *Formatter) symbol() string {
	if f.locale.Symbol != "" {
		return f.locale.Symbol
	}
	return f.locale.Currency.String()
}

// groupSeparator reads the locale's thousands separator off a formatted 1000.
func groupSeparator(p *message.Printer) string {
	s := p.Sprintf("%d", 1000)
	if !strings.HasPrefix(s, "1") || !strings.HasSuffix(s, "000") {
		return ""
	}
	return s[1 : len(s)-3]
}

func groupDigits(digits, sep string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}
