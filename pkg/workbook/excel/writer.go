package excel

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/de-tools/order-reports/pkg/workbook"
	"github.com/de-tools/order-reports/pkg/workbook/destination"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// Writer implements workbook.Writer on top of excelize and hands the
// serialized file to a destination.
type Writer struct {
	dest destination.Destination
}

func NewWriter(dest destination.Destination) *Writer {
	return &Writer{dest: dest}
}

func (w *Writer) AppendSheet(wb *workbook.Workbook, name string, rows []workbook.Row) error {
	return wb.Append(name, rows)
}

func (w *Writer) WriteAndDownload(ctx context.Context, wb *workbook.Workbook, fileName string) error {
	logger := zerolog.Ctx(ctx)

	f, err := Render(wb)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}

	logger.Debug().
		Str("file", fileName).
		Int("bytes", buf.Len()).
		Msg("workbook serialized")

	if err := w.dest.Deliver(ctx, fileName, workbook.ContentTypeXLSX, buf); err != nil {
		return fmt.Errorf("failed to deliver %s: %w", fileName, err)
	}
	return nil
}

// Render builds an excelize file with the workbook's sheets in order.
func Render(wb *workbook.Workbook) (*excelize.File, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, workbook.ErrEmptyWorkbook
	}

	f := excelize.NewFile()
	styles, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sheet.Name)
		} else {
			_, err = f.NewSheet(sheet.Name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, styles); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet workbook.Sheet, styles map[workbook.Style]int) error {
	widths := map[int]int{}

	for r, row := range sheet.Rows {
		if len(row) == 0 {
			continue
		}

		values := make([]any, len(row))
		for c, cell := range row {
			values[c] = cell.Value
			if n := utf8.RuneCountInString(fmt.Sprint(cell.Value)); n > widths[c] && cell.Style != workbook.StyleTitle {
				widths[c] = n
			}
		}

		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, start, &values); err != nil {
			return err
		}

		for c, cell := range row {
			styleID, ok := styles[cell.Style]
			if !ok {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet.Name, ref, ref, styleID); err != nil {
				return err
			}
		}
	}

	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, clampWidth(width+2)); err != nil {
			return err
		}
	}
	return nil
}

func newStyles(f *excelize.File) (map[workbook.Style]int, error) {
	defs := map[workbook.Style]*excelize.Style{
		workbook.StyleTitle: {
			Font: &excelize.Font{Bold: true, Size: 14},
		},
		workbook.StyleSection: {
			Font: &excelize.Font{Bold: true, Size: 12},
		},
		workbook.StyleHeader: {
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
			Border: []excelize.Border{
				{Type: "bottom", Color: "#8EA9DB", Style: 1},
			},
		},
	}

	styles := make(map[workbook.Style]int, len(defs))
	for style, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return nil, fmt.Errorf("failed to create cell style: %w", err)
		}
		styles[style] = id
	}
	return styles, nil
}

func clampWidth(w int) float64 {
	switch {
	case w < minColumnWidth:
		return minColumnWidth
	case w > maxColumnWidth:
		return maxColumnWidth
	default:
		return float64(w)
	}
}
