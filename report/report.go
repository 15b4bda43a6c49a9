// Package report prints a simulated distribution and its statistics.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rubiojr/abilityroll/dice"
	"github.com/rubiojr/abilityroll/stats"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the report encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{Text, JSON, YAML} }

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (choose from text, json, yaml)", ErrUnknownFormat, s)
}

// Result is everything a run hands to the reporter.
type Result struct {
	Rule       dice.Rule     `json:"rule" yaml:"rule"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Seed       *int64        `json:"seed,omitempty" yaml:"seed,omitempty"`
	Rows       []stats.Row   `json:"distribution" yaml:"distribution"`
	Summary    stats.Summary `json:"summary" yaml:"summary"`
}

// Write renders res to w in the given format. color only affects Text.
func Write(w io.Writer, res Result, format Format, color bool) error {
	switch format {
	case Text, "":
		return writeText(w, res, palette{enabled: color})
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, res Result, p palette) error {
	var sb strings.Builder

	sb.WriteString(p.bold(fmt.Sprintf("%5s %8s %10s", "value", "count", "percent")))
	sb.WriteString("\n")
	for _, r := range res.Rows {
		line := fmt.Sprintf("%5d %8d %10.6f", r.Value, r.Count, r.Percent)
		if r.Value == res.Summary.Mode {
			line = p.yellow(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	stat := func(label, value string) {
		sb.WriteString(p.gray(label))
		sb.WriteString(" ")
		sb.WriteString(p.cyan(value))
		sb.WriteString("\n")
	}
	stat("Mean:", formatFloat(res.Summary.Mean))
	stat("Mode:", fmt.Sprintf("%d", res.Summary.Mode))
	stat("Standard deviation:", formatFloat(res.Summary.StdDev))
	stat("Skewness:", formatFloat(res.Summary.Skewness))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Done prints the closing line naming the written chart.
func Done(w io.Writer, plotFile string, color bool) error {
	p := palette{enabled: color}
	_, err := fmt.Fprintf(w, "Wrote plot image to: %s\n", p.green(plotFile))
	return err
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.6f", f)
}
