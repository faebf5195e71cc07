package validator

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/example/apimap-gen/internal/generator"
	"gopkg.in/yaml.v3"
)

// Summary describes a report that passed validation
type Summary struct {
	Endpoints int
	Verbs     map[string]int
}

// ValidateReport validates a generated report file. Text reports are checked
// line by line; anything not starting with a comment is parsed as the JSON or
// YAML form.
func ValidateReport(filename, prefix string) (*Summary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if prefix == "" {
		prefix = generator.DefaultPrefix
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("#")) || len(bytes.TrimSpace(data)) == 0 {
		return validateText(data, prefix)
	}
	return validateStructured(data, prefix)
}

func validateText(data []byte, prefix string) (*Summary, error) {
	summary := &Summary{Verbs: map[string]int{}}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	headers := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if lineNo <= 2 {
			if !strings.HasPrefix(line, "#") {
				return nil, fmt.Errorf("line %d: missing header comment", lineNo)
			}
			headers++
			continue
		}

		verb, path, method, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := validateRecord(verb, path, method, prefix); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		summary.Endpoints++
		summary.Verbs[verb]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	if headers != 2 {
		return nil, fmt.Errorf("report must open with 2 header lines, found %d", headers)
	}
	return summary, nil
}

func parseLine(line string) (verb, path, method string, err error) {
	left, right, ok := strings.Cut(line, generator.ReportSeparator)
	if !ok {
		return "", "", "", fmt.Errorf("missing %q separator", strings.TrimSpace(generator.ReportSeparator))
	}

	fields := strings.Fields(left)
	if len(fields) != 2 {
		return "", "", "", fmt.Errorf("expected verb and path, got %d fields", len(fields))
	}

	// method name, optionally followed by a note
	method, _, _ = strings.Cut(right, " ")
	return fields[0], fields[1], method, nil
}

func validateStructured(data []byte, prefix string) (*Summary, error) {
	var report struct {
		Endpoints []generator.EndpointRecord `yaml:"endpoints"`
	}
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse file as YAML or JSON: %w", err)
	}

	summary := &Summary{Verbs: map[string]int{}}
	for i, r := range report.Endpoints {
		if err := validateRecord(string(r.Verb), r.Path, r.SourceMethod, prefix); err != nil {
			return nil, fmt.Errorf("endpoint %d: %w", i, err)
		}
		summary.Endpoints++
		summary.Verbs[string(r.Verb)]++
	}
	return summary, nil
}

func validateRecord(verb, path, method, prefix string) error {
	if !generator.IsVerb(verb) {
		return fmt.Errorf("invalid verb: %q", verb)
	}
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if !strings.HasPrefix(path, prefix+"/") {
		return fmt.Errorf("path %s does not start with %s/", path, prefix)
	}
	if method == "" {
		return fmt.Errorf("missing source method")
	}
	return nil
}
