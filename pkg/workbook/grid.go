package workbook

// Grid accumulates the rows of one sheet.
type Grid struct {
	rows []Row
}

func (g *Grid) Title(text string) *Grid {
	g.rows = append(g.rows, Row{{Value: text, Style: StyleTitle}})
	return g
}

func (g *Grid) Section(text string) *Grid {
	g.rows = append(g.rows, Row{{Value: text, Style: StyleSection}})
	return g
}

func (g *Grid) Blank() *Grid {
	g.rows = append(g.rows, Row{})
	return g
}

func (g *Grid) Pair(label string, value any) *Grid {
	g.rows = append(g.rows, Row{{Value: label}, {Value: value}})
	return g
}

func (g *Grid) Header(labels ...string) *Grid {
	row := make(Row, 0, len(labels))
	for _, l := range labels {
		row = append(row, Cell{Value: l, Style: StyleHeader})
	}
	g.rows = append(g.rows, row)
	return g
}

func (g *Grid) Values(values ...any) *Grid {
	row := make(Row, 0, len(values))
	for _, v := range values {
		row = append(row, Cell{Value: v})
	}
	g.rows = append(g.rows, row)
	return g
}

func (g *Grid) Rows() []Row {
	return g.rows
}
