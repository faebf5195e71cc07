package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Column widths of the text report
const (
	VerbWidth = 6
	PathWidth = 50
)

// ReportSeparator sits between the path column and the method name
const ReportSeparator = "  => "

// ReportHeader returns the two comment lines opening a text report
func ReportHeader(source string) []string {
	if source == "" {
		source = "controller sources"
	}
	return []string{
		fmt.Sprintf("# Inferred API endpoints, generated from %s. Do not edit by hand.", source),
		fmt.Sprintf("# %-*s  %-*s%smethod (note)", VerbWidth, "VERB", PathWidth, "PATH", ReportSeparator),
	}
}

// FormatLine renders one record as a text report line
func FormatLine(r EndpointRecord) string {
	note := ""
	if r.Note != "" {
		note = "  " + r.Note
	}
	return fmt.Sprintf("%-*s  %-*s%s%s%s", VerbWidth, r.Verb, PathWidth, r.Path, ReportSeparator, r.SourceMethod, note)
}

// Render writes result to w in the requested format
func Render(w io.Writer, format string, result *Result) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return renderText(w, result)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s (use text, json or yaml)", format)
	}
}

func renderText(w io.Writer, result *Result) error {
	var b strings.Builder
	for _, line := range ReportHeader(result.Source) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, r := range result.Endpoints {
		b.WriteString(FormatLine(r))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
