package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/cli"
	"github.com/midbel/sheetmap/config"
	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

var errFail = errors.New("fail")

// logger writes debug traces to stderr. It stays silent unless -v is given.
var logger = ll.New("sheetmap").Handler(lh.NewTextHandler(os.Stderr)).Disable()

var (
	summary = "sheetmap gives the cells occupied by a table placed on a spreadsheet"
	help    = ""
)

func main() {
	var (
		set     = cli.NewFlagSet("sheetmap")
		root    = prepare()
		verbose bool
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	set.BoolVar(&verbose, "v", false, "print debug traces")
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	setupLogger(verbose)

	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	if verbose {
		logger.Enable()
		logger.Resume()
		return
	}
	logger.Disable()
	logger.Suspend()
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"regions"}, &regionsCmd)
	root.Register([]string{"column"}, &columnCmd)
	root.Register([]string{"row"}, &rowCmd)
	root.Register([]string{"export"}, &exportCmd)
	root.Register([]string{"preview"}, &previewCmd)

	return root
}

var regionsCmd = cli.Command{
	Name:    "regions",
	Alias:   []string{"info"},
	Summary: "print the ranges of the header, index, body and table",
	Usage:   "regions [-c config] [-s cell] [-i|-n] [-H depth] [-I depth] [-a] <file.csv>",
	Handler: &RegionsCommand{},
}

var columnCmd = cli.Command{
	Name:    "column",
	Alias:   []string{"col"},
	Summary: "print the cells of the selected columns",
	Usage:   "column [-c config] [-s cell] [-i|-n] [-w] <file.csv> <key> [<key>...]",
	Handler: &SelectCommand{Columns: true},
}

var rowCmd = cli.Command{
	Name:    "row",
	Summary: "print the cells of the selected rows",
	Usage:   "row [-c config] [-s cell] [-i|-n] [-w] <file.csv> <key> [<key>...]",
	Handler: &SelectCommand{},
}

var exportCmd = cli.Command{
	Name:    "export",
	Alias:   []string{"write"},
	Summary: "write the table to a spreadsheet with its regions styled",
	Usage:   "export [-c config] [-s cell] [-i|-n] [-f xlsx|csv] [-o file] <file.csv>",
	Handler: &ExportCommand{},
}

var previewCmd = cli.Command{
	Name:    "preview",
	Alias:   []string{"show"},
	Summary: "print the grid of the table with its regions colored",
	Usage:   "preview [-c config] [-s cell] [-i|-n] [-k column] [-r row] <file.csv>",
	Handler: &PreviewCommand{},
}

// tableOptions holds the flags shared by all commands. Flags given on the
// command line override the values of the configuration file.
type tableOptions struct {
	Config string

	start       *string
	headerDepth *int
	indexDepth  *int
	comma       *string
	fallback    *string
	keep        bool
	drop        bool
	lists       bool
}

type flagSet interface {
	StringVar(*string, string, string, string)
	BoolVar(*bool, string, bool, string)
	Func(string, string, func(string) error)
}

func (o *tableOptions) Register(set flagSet) {
	set.StringVar(&o.Config, "c", "", "configuration file")
	set.BoolVar(&o.keep, "i", false, "write the index of the table")
	set.BoolVar(&o.drop, "n", false, "do not write the index of the table")
	set.BoolVar(&o.lists, "l", false, "correct list values")
	set.Func("s", "top-left cell of the table", func(str string) error {
		o.start = &str
		return nil
	})
	set.Func("d", "fields delimiter", func(str string) error {
		comma, err := csvSeparator(str)
		if err == nil {
			str = string(comma)
			o.comma = &str
		}
		return err
	})
	set.Func("b", "index fallback (first-column, empty)", func(str string) error {
		o.fallback = &str
		return nil
	})
	set.Func("H", "number of header levels", func(str string) error {
		n, err := strconv.Atoi(str)
		if err == nil {
			o.headerDepth = &n
		}
		return err
	})
	set.Func("I", "number of index levels", func(str string) error {
		n, err := strconv.Atoi(str)
		if err == nil {
			o.indexDepth = &n
		}
		return err
	})
}

func (o *tableOptions) Load() (*config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		c, err := config.LoadFile(o.Config)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if o.start != nil {
		cfg.Start = *o.start
	}
	if o.headerDepth != nil {
		cfg.HeaderDepth = *o.headerDepth
	}
	if o.indexDepth != nil {
		cfg.IndexDepth = *o.indexDepth
	}
	if o.comma != nil {
		cfg.Comma = *o.comma
	}
	if o.fallback != nil {
		cfg.Fallback = *o.fallback
	}
	if o.lists {
		cfg.CorrectLists = true
	}
	if o.keep || o.drop {
		keep := o.keep && !o.drop
		cfg.Index = &keep
	}
	return cfg, cfg.Validate()
}

type source struct {
	*config.Config
	Frame *frame.Frame
	Table *grid.Table
}

func (o *tableOptions) Open(file string) (*source, error) {
	if file == "" {
		return nil, fmt.Errorf("missing input file")
	}
	cfg, err := o.Load()
	if err != nil {
		return nil, err
	}
	f, err := frame.ReadFile(file, cfg.ReadOptions())
	if err != nil {
		return nil, err
	}
	shape, err := cfg.Shape()
	if err != nil {
		return nil, err
	}
	tb, err := f.Map(shape)
	if err != nil {
		return nil, err
	}
	size := tb.Size()
	logger.Debugf("%s: table placed at %s (lines: %d, columns: %d, index: %t, fallback: %s)",
		file,
		cfg.Start,
		size.Lines,
		size.Columns,
		shape.KeepIndex,
		shape.Fallback,
	)
	src := source{
		Config: cfg,
		Frame:  f,
		Table:  tb,
	}
	return &src, nil
}

func csvSeparator(str string) (byte, error) {
	var comma byte
	switch str {
	case "semi", "semicolon", ";":
		comma = ';'
	case "comma", ",", "":
		comma = ','
	case "tab", "\t":
		comma = '\t'
	case "colon", ":":
		comma = ':'
	case "pipe", "|":
		comma = '|'
	default:
		return 0, fmt.Errorf("%s: unsupported separator", str)
	}
	return comma, nil
}
