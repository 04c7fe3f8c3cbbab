package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/render/report"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the output formats Write accepts.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

type TableConfig struct {
	MaxCellWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MaxCellWidth: 48,
	}
}

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

func (c *Reporter) Write(view api.View, format string) error {
	switch format {
	case FormatTable:
		return c.Handle(report.Build(view))
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		return c.writeYAML(view)
	default:
		return fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// writeYAML goes through the JSON encoding so keys keep their JSON names,
// order and omitempty handling.
func (c *Reporter) writeYAML(view api.View) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to convert view to yaml: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(c.writer)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, child := range n.Content {
		blockStyle(child)
	}
}

type tableSection struct {
	report.Section
	Widths []int
}

func (c *Reporter) Handle(r report.Report) error {
	sections := make([]tableSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, tableSection{Section: s, Widths: c.columnWidths(s)})
	}

	funcMap := template.FuncMap{
		"formatRow": func(widths []int, cells []string) string {
			var b strings.Builder
			b.WriteString("|")
			for i, w := range widths {
				cell := ""
				if i < len(cells) {
					cell = c.clip(cells[i])
				}
				fmt.Fprintf(&b, " %s%s |", cell, strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
			}
			return b.String()
		},
		"separator": func(widths []int) string {
			var b strings.Builder
			b.WriteString("+")
			for _, w := range widths {
				b.WriteString(strings.Repeat("-", w+2))
				b.WriteString("+")
			}
			return b.String()
		},
	}

	tmpl := `
{{.Report.Title}}
{{.Report.Subtitle}}
{{range $s := .Sections}}
=== {{$s.Title}} ===
{{range $s.Summary}}{{.Label}}: {{.Value}}
{{end}}{{if $s.Columns}}
{{separator $s.Widths}}
{{formatRow $s.Widths $s.Columns}}
{{separator $s.Widths}}
{{range $s.Rows}}{{formatRow $s.Widths .}}
{{end}}{{separator $s.Widths}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Report   report.Report
		Sections []tableSection
	}{Report: r, Sections: sections})
}

func (c *Reporter) columnWidths(s report.Section) []int {
	widths := make([]int, len(s.Columns))
	measure := func(cells []string) {
		for i := range widths {
			if i < len(cells) {
				widths[i] = max(widths[i], utf8.RuneCountInString(c.clip(cells[i])))
			}
		}
	}
	measure(s.Columns)
	for _, row := range s.Rows {
		measure(row)
	}
	return widths
}

func (c *Reporter) clip(cell string) string {
	if utf8.RuneCountInString(cell) <= c.config.MaxCellWidth {
		return cell
	}
	runes := []rune(cell)
	return string(runes[:c.config.MaxCellWidth-1]) + "…"
}
