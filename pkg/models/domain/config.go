package domain

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale fixes how currency and dates are rendered in exported sheets.
type Locale struct {
	Tag      language.Tag
	Currency currency.Unit
	Symbol   string
	Location *time.Location
}

func (l Locale) String() string {
	return fmt.Sprintf("%s:%s", l.Tag, l.Currency)
}
