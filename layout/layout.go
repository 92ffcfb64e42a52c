package layout

// Dimension counts the lines and columns of a block of cells.
type Dimension struct {
	Lines   int
	Columns int
}

func (d Dimension) Cells() int {
	return d.Lines * d.Columns
}
