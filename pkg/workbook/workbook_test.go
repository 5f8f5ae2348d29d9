package workbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbook_Append(t *testing.T) {
	wb := New()

	require.NoError(t, wb.Append("Detail Pesanan", nil))
	require.NoError(t, wb.Append("Item Pesanan", []Row{{{Value: "x"}}}))

	assert.Len(t, wb.Sheets, 2)
	assert.Equal(t, "Detail Pesanan", wb.Sheets[0].Name)
	assert.Equal(t, "Item Pesanan", wb.Sheets[1].Name)

	s, ok := wb.Sheet("item pesanan")
	assert.True(t, ok)
	assert.Len(t, s.Rows, 1)
}

func TestWorkbook_Append_Duplicate(t *testing.T) {
	wb := New()
	require.NoError(t, wb.Append("Sheet", nil))

	err := wb.Append("SHEET", nil)

	assert.ErrorIs(t, err, ErrDuplicateSheet)
	assert.Len(t, wb.Sheets, 1)
}

func TestValidateSheetName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Laporan Harian", true},
		{"", false},
		{"   ", false},
		{strings.Repeat("a", 31), true},
		{strings.Repeat("a", 32), false},
		{"a/b", false},
		{"a[1]", false},
		{"what?", false},
		{"'quoted'", false},
	}

	for _, tt := range tests {
		err := ValidateSheetName(tt.name)
		if tt.valid {
			assert.NoError(t, err, tt.name)
		} else {
			assert.ErrorIs(t, err, ErrInvalidSheetName, tt.name)
		}
	}
}

func TestGrid(t *testing.T) {
	g := &Grid{}
	g.Title("TITLE").
		Blank().
		Pair("Label", 1).
		Section("SECTION").
		Header("A", "B").
		Values("x", 2)

	rows := g.Rows()
	require.Len(t, rows, 6)
	assert.Equal(t, StyleTitle, rows[0][0].Style)
	assert.Empty(t, rows[1])
	assert.Equal(t, Row{{Value: "Label"}, {Value: 1}}, rows[2])
	assert.Equal(t, StyleSection, rows[3][0].Style)
	assert.Equal(t, Row{{Value: "A", Style: StyleHeader}, {Value: "B", Style: StyleHeader}}, rows[4])
	assert.Equal(t, Row{{Value: "x"}, {Value: 2}}, rows[5])
}
