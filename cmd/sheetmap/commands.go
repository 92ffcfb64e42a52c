package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/sheetmap/config"
	"github.com/midbel/sheetmap/csv"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
	"github.com/midbel/sheetmap/xlsx"
)

type RegionsCommand struct {
	tableOptions
	Cells bool
}

func (c RegionsCommand) Run(args []string) error {
	set := cli.NewFlagSet("regions")
	c.Register(set)
	set.BoolVar(&c.Cells, "a", false, "print the cells of each region")
	if err := set.Parse(args); err != nil {
		return err
	}
	src, err := c.Open(set.Arg(0))
	if err != nil {
		return err
	}
	rs := src.Table.Regions()
	list := []struct {
		Name string
		grid.Element
	}{
		{"header", rs.Header},
		{"index", rs.Index},
		{"body", rs.Body},
		{"table", rs.Table},
	}
	for _, el := range list {
		rg := el.Range()
		if rg == "" {
			rg = "-"
		}
		fmt.Fprintf(os.Stdout, "%-8s %s", el.Name, rg)
		if c.Cells {
			fmt.Fprintf(os.Stdout, " %s", strings.Join(el.Cells(), ","))
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

type SelectCommand struct {
	tableOptions
	Columns bool
	Labels  bool
}

func (c SelectCommand) Run(args []string) error {
	name := "row"
	if c.Columns {
		name = "column"
	}
	set := cli.NewFlagSet(name)
	c.Register(set)
	set.BoolVar(&c.Labels, "w", false, "include the header cells of columns or the index cells of rows")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() < 2 {
		return fmt.Errorf("%s: missing key", name)
	}
	src, err := c.Open(set.Arg(0))
	if err != nil {
		return err
	}
	key := layout.Labels(set.Args()[1:]...)
	var cells []string
	if c.Columns {
		cells, err = src.Table.Column(key, c.Labels)
	} else {
		cells, err = src.Table.Row(key, c.Labels)
	}
	if err != nil {
		return err
	}
	logger.Debugf("%s %v: %d cell(s) resolved", name, set.Args()[1:], len(cells))
	for _, cell := range cells {
		fmt.Fprintln(os.Stdout, cell)
	}
	return nil
}

type ExportCommand struct {
	tableOptions
	OutFile string
	Format  string
}

func (c ExportCommand) Run(args []string) error {
	set := cli.NewFlagSet("export")
	c.Register(set)
	set.StringVar(&c.OutFile, "o", "", "write result to output file")
	set.StringVar(&c.Format, "f", "", "output format (xlsx, csv)")
	if err := set.Parse(args); err != nil {
		return err
	}
	src, err := c.Open(set.Arg(0))
	if err != nil {
		return err
	}
	if c.Format != "" {
		src.Format = c.Format
	}
	if c.OutFile == "" {
		base := strings.TrimSuffix(set.Arg(0), filepath.Ext(set.Arg(0)))
		c.OutFile = fmt.Sprintf("%s.%s", base, src.Format)
	}
	if err := os.MkdirAll(filepath.Dir(c.OutFile), 0755); err != nil {
		return err
	}
	logger.Debugf("export table to %s (format: %s, sheet: %s)", c.OutFile, src.Format, src.Sheet)
	switch src.Format {
	case config.FormatXlsx:
		return exportXlsx(src, c.OutFile)
	case config.FormatCsv:
		return exportCsv(src, c.OutFile)
	default:
		return fmt.Errorf("%s: unsupported format", src.Format)
	}
}

func exportCsv(src *source, file string) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	ws := csv.NewWriter(w)
	ws.Comma = src.Comma[0]
	if err := ws.WriteFrame(src.Frame, src.Table); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func exportXlsx(src *source, file string) error {
	ws, err := styleXlsx(src)
	if err != nil {
		return err
	}
	defer ws.Close()
	return ws.Save(file)
}

// styleXlsx writes the table of src to a new workbook, styles its regions
// and highlights the selections of the configuration.
func styleXlsx(src *source) (*xlsx.Writer, error) {
	ws, err := xlsx.NewWriter(src.Sheet)
	if err != nil {
		return nil, err
	}
	if err := fillXlsx(ws, src); err != nil {
		ws.Close()
		return nil, err
	}
	return ws, nil
}

func fillXlsx(ws *xlsx.Writer, src *source) error {
	if err := ws.Write(src.Frame, src.Table); err != nil {
		return err
	}
	var (
		rs     = src.Table.Regions()
		styles = []struct {
			el    grid.Element
			style *config.Style
		}{
			{rs.Header, src.Styles.Header},
			{rs.Body, src.Styles.Body},
			{rs.Index, src.Styles.Index},
		}
	)
	for _, s := range styles {
		if s.style == nil {
			continue
		}
		if err := ws.Apply(s.el.WithStyle(s.style.Xlsx())); err != nil {
			return err
		}
	}
	for _, sel := range src.Columns {
		cells, err := src.Table.Column(layout.Label(sel.Key), sel.Include)
		if err != nil {
			return err
		}
		if err := ws.Highlight(cells, highlightStyle(sel.Style)); err != nil {
			return err
		}
	}
	for _, sel := range src.Rows {
		cells, err := src.Table.Row(layout.Label(sel.Key), sel.Include)
		if err != nil {
			return err
		}
		if err := ws.Highlight(cells, highlightStyle(sel.Style)); err != nil {
			return err
		}
	}
	return nil
}

const defaultHighlight = "FFFF00"

// highlightStyle gives a yellow fill to selections without style.
func highlightStyle(style config.Style) *xlsx.Style {
	if style == (config.Style{}) {
		style.Fill = defaultHighlight
	}
	return style.Xlsx()
}
