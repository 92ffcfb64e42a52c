// Package config loads the description of an export: where the table goes,
// how its source is read and how its regions are styled.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
	"github.com/midbel/sheetmap/xlsx"
)

var ErrConfig = errors.New("invalid configuration")

const (
	FormatXlsx = "xlsx"
	FormatCsv  = "csv"
)

type Config struct {
	Sheet        string      `yaml:"sheet" validate:"max=31"`
	Start        string      `yaml:"start" validate:"required,cell"`
	Index        *bool       `yaml:"index"`
	HeaderDepth  int         `yaml:"header_depth" validate:"min=1"`
	IndexDepth   int         `yaml:"index_depth" validate:"min=0"`
	Comma        string      `yaml:"comma" validate:"len=1,ascii"`
	CorrectLists bool        `yaml:"correct_lists"`
	Fallback     string      `yaml:"fallback" validate:"omitempty,oneof=first-column empty"`
	Format       string      `yaml:"format" validate:"omitempty,oneof=xlsx csv"`
	Styles       Styles      `yaml:"styles"`
	Columns      []Selection `yaml:"columns" validate:"dive"`
	Rows         []Selection `yaml:"rows" validate:"dive"`
}

type Styles struct {
	Header *Style `yaml:"header" validate:"omitempty"`
	Index  *Style `yaml:"index" validate:"omitempty"`
	Body   *Style `yaml:"body" validate:"omitempty"`
}

type Style struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color" validate:"omitempty,rgb"`
	Fill  string `yaml:"fill" validate:"omitempty,rgb"`
	Align string `yaml:"align" validate:"omitempty,oneof=left center right"`
}

func (s *Style) Xlsx() *xlsx.Style {
	if s == nil {
		return nil
	}
	return &xlsx.Style{
		Bold:  s.Bold,
		Color: s.Color,
		Fill:  s.Fill,
		Align: s.Align,
	}
}

// Selection highlights the columns or the rows selected by Key. Include adds
// the header cells of the columns or the index cells of the rows.
type Selection struct {
	Key     string `yaml:"key" validate:"required"`
	Include bool   `yaml:"include"`
	Style   Style  `yaml:"style"`
}

func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read configuration %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Sheet == "" {
		cfg.Sheet = "Sheet1"
	}
	if cfg.Start == "" {
		cfg.Start = "A1"
	}
	if cfg.Index == nil {
		keep := true
		cfg.Index = &keep
	}
	if cfg.HeaderDepth == 0 {
		cfg.HeaderDepth = 1
	}
	if cfg.Comma == "" {
		cfg.Comma = ","
	}
	if cfg.Fallback == "" {
		cfg.Fallback = grid.FallbackFirstColumn.String()
	}
	if cfg.Format == "" {
		cfg.Format = FormatXlsx
	}
}

var rgb = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		return layout.IsAddress(fl.Field().String())
	})
	v.RegisterValidation("rgb", func(fl validator.FieldLevel) bool {
		return rgb.MatchString(fl.Field().String())
	})
	return v
}()

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	var list []string
	for _, fe := range verrs {
		list = append(list, fmt.Sprintf("%s failed on %s (%v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(list, ", "))
}

func (c *Config) KeepIndex() bool {
	return c.Index == nil || *c.Index
}

func (c *Config) Offset() (grid.Offset, error) {
	return grid.OffsetFrom(c.Start)
}

// Shape gives the placement options of the table. Its size and depth are
// filled by frame.Frame.Map.
func (c *Config) Shape() (grid.Shape, error) {
	var shape grid.Shape
	off, err := c.Offset()
	if err != nil {
		return shape, err
	}
	fallback, err := grid.FallbackFromString(c.Fallback)
	if err != nil {
		return shape, err
	}
	shape.Offset = off
	shape.KeepIndex = c.KeepIndex()
	shape.Fallback = fallback
	return shape, nil
}

func (c *Config) ReadOptions() frame.Options {
	opts := frame.DefaultOptions()
	opts.HeaderDepth = c.HeaderDepth
	opts.IndexDepth = c.IndexDepth
	opts.CorrectLists = c.CorrectLists
	if c.Comma != "" {
		opts.Comma = rune(c.Comma[0])
	}
	return opts
}
