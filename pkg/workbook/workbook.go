package workbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetNameLength = 31

var (
	ErrDuplicateSheet   = errors.New("duplicate sheet name")
	ErrInvalidSheetName = errors.New("invalid sheet name")
	ErrEmptyWorkbook    = errors.New("workbook has no sheets")
)

// Writer is the spreadsheet capability the exporter depends on.
type Writer interface {
	// AppendSheet adds a named sheet to the end of the workbook
	AppendSheet(wb *Workbook, name string, rows []Row) error
	// WriteAndDownload serializes the workbook and delivers it under fileName
	WriteAndDownload(ctx context.Context, wb *Workbook, fileName string) error
}

type Style int

const (
	StyleNone Style = iota
	StyleTitle
	StyleSection
	StyleHeader
)

type Cell struct {
	Value any
	Style Style
}

type Row []Cell

type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is an ordered list of sheets
type Workbook struct {
	Sheets []Sheet
}

func New() *Workbook {
	return &Workbook{}
}

// Append adds a sheet after checking the name against spreadsheet rules.
func (wb *Workbook) Append(name string, rows []Row) error {
	if err := ValidateSheetName(name); err != nil {
		return err
	}
	if _, ok := wb.Sheet(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
	}
	wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	return nil
}

func (wb *Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range wb.Sheets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Sheet{}, false
}

func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSheetName)
	}
	if len([]rune(name)) > maxSheetNameLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidSheetName, name, maxSheetNameLength)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidSheetName, name)
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("%w: %q starts or ends with an apostrophe", ErrInvalidSheetName, name)
	}
	return nil
}
