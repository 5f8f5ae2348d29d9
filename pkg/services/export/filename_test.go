package export

import (
	"testing"
	"time"

	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestFileNames(t *testing.T) {
	day := time.Date(2026, time.October, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Pesanan_ORD-1_2026-10-15.xlsx", OrderFileName("ORD-1", day))
	assert.Equal(t, "Pesanan_a%2Fb%20c_2026-10-15.xlsx", OrderFileName("a/b c", day))
	assert.Equal(t, "Laporan_Harian_2026-10-15.xlsx", DailyFileName(day))
	assert.Equal(t, "Laporan_Mingguan_2026-10-09_2026-10-15.xlsx", WeeklyFileName(domain.TimePeriod{
		Start: day.AddDate(0, 0, -6),
		End:   day,
	}))
	assert.Equal(t, "Laporan_Bulanan_Oktober_2026.xlsx", MonthlyFileName("Oktober", 2026))
	assert.Equal(t, "Semua_Pesanan_2026-10-15.xlsx", AllOrdersFileName(day))
}

func TestAllOrdersFileName_SameDayCollides(t *testing.T) {
	morning := time.Date(2026, time.October, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.October, 15, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, AllOrdersFileName(morning), AllOrdersFileName(evening))
}

func TestOrderFileName_DistinctIDs(t *testing.T) {
	day := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)

	ids := []string{
		"INV/2026/001", "INV-2026-001", "INV%2F2026%2F001", "INV:2026:001",
		"A B", "A_B", " A", "A", "A ", `A\B`, "A|B", "A?B", "A*B",
	}

	seen := map[string]string{}
	for _, id := range ids {
		name := OrderFileName(id, day)
		if other, ok := seen[name]; ok {
			t.Errorf("ids %q and %q share file name %s", other, id, name)
		}
		seen[name] = id
		assert.NotContains(t, name[len("Pesanan_"):], "/")
	}
}
