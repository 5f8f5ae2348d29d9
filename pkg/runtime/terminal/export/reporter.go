package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	exportsvc "github.com/de-tools/order-reports/pkg/services/export"
)

type TableConfig struct {
	SheetWidth int
	RowsWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		SheetWidth: 31,
		RowsWidth:  8,
	}
}

// Summary is what the reporter prints after an export
type Summary struct {
	Result      exportsvc.Result
	Destination string
}

// Reporter prints export summaries to the console
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const summaryTemplate = `Exported {{.Result.FileName}} to {{.Destination}}
{{separator}}
{{formatRow "Sheet" "Rows"}}
{{separator}}
{{range .Result.Sheets}}{{formatRow .Name .Rows}}
{{end}}{{separator}}
`

func (c *Reporter) Handle(summary Summary) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, rows interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.SheetWidth, name,
				c.config.RowsWidth, rows)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.SheetWidth+2),
				strings.Repeat("-", c.config.RowsWidth+2))
		},
	}

	t, err := template.New("summary").Funcs(funcMap).Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
