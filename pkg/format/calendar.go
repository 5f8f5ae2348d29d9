package format

import "golang.org/x/text/language"

type calendar struct {
	months   [12]string
	at       string
	clockSep string
}

var indonesian = calendar{
	months: [12]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
	at:       "pukul",
	clockSep: ".",
}

var english = calendar{
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	at:       "at",
	clockSep: ":",
}

func calendarFor(tag language.Tag) calendar {
	base, _ := tag.Base()
	switch base.String() {
	case "id", "ms":
		return indonesian
	default:
		return english
	}
}
