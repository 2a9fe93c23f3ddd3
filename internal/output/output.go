// Package output renders window data as terminal tables and trees, YAML or JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/winspect/internal/window"
)

// Format selects how a Printer renders its output.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatTable, FormatYAML, FormatJSON}

// ParseFormat validates an output format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q (want table, yaml or json)", s)
}

// Printer writes rendered output to a single writer.
type Printer struct {
	w      io.Writer
	format Format
}

// New creates a Printer. An empty format means table.
func New(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatTable
	}

	return &Printer{w: w, format: format}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Value renders v as YAML or JSON. In table format it falls back to YAML,
// which reads well on a terminal.
func (p *Printer) Value(v any) error {
	if p.format == FormatJSON {
		return p.json(v)
	}

	return p.yaml(v)
}

// Message prints a line of plain text in table format, or v otherwise.
func (p *Printer) Message(text string, v any) error {
	if p.format == FormatTable {
		_, err := fmt.Fprintln(p.w, text)
		return err
	}

	return p.Value(v)
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return enc.Close()
}

// Properties renders an ordered property list. YAML and JSON keep the order
// of the list rather than sorting keys.
func (p *Printer) Properties(props window.PropertyList) error {
	switch p.format {
	case FormatJSON:
		return p.orderedJSON(props)
	case FormatYAML:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, prop := range props {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: prop.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Value},
			)
		}
		return p.yaml(node)
	}

	rows := make([][]string, 0, len(props))
	for _, prop := range props {
		rows = append(rows, []string{prop.Name, prop.Value})
	}

	_, err := fmt.Fprintln(p.w, newTable([]string{"PROPERTY", "VALUE"}, rows))
	return err
}

func (p *Printer) orderedJSON(props window.PropertyList) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	for i, prop := range props {
		k, err := json.Marshal(prop.Name)
		if err != nil {
			return err
		}

		v, err := json.Marshal(prop.Value)
		if err != nil {
			return err
		}

		fmt.Fprintf(&buf, "  %s: %s", k, v)
		if i < len(props)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
	_, err := p.w.Write(buf.Bytes())
	return err
}
