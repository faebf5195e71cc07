package generator

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultSuffix is stripped from file names when deriving a resource name
const DefaultSuffix = "Controller"

var (
	classPattern = regexp.MustCompile(`\bclass\s+([A-Za-z_]\w*)`)

	// public function name(, public static function name(, static public function &name(
	publicMethodPattern = regexp.MustCompile(
		`\b(?:(?:final|abstract|static)\s+)*public\s+(?:(?:final|abstract|static)\s+)*function\s+&?\s*([A-Za-z_]\w*)\s*\(`,
	)
)

// Extractor pulls class and public method declarations out of source text.
//
// Matching is lexical: declarations inside comments or string literals are
// picked up as well, and nested scopes are not understood. It is a
// best-effort scan, not a parser.
type Extractor struct {
	suffix  string
	exclude []string
}

// NewExtractor creates an extractor stripping suffix from file names and
// dropping methods whose name matches any of the exclude glob patterns
func NewExtractor(suffix string, exclude []string) *Extractor {
	return &Extractor{
		suffix:  suffix,
		exclude: exclude,
	}
}

// Extract scans src, read from file, and returns its resource unit.
// ok is false when src declares no class.
func (e *Extractor) Extract(file string, src []byte) (unit ResourceUnit, ok bool) {
	m := classPattern.FindSubmatch(src)
	if m == nil {
		return ResourceUnit{}, false
	}

	unit = ResourceUnit{
		File:         file,
		ClassName:    string(m[1]),
		ResourceName: ResourceName(file, e.suffix),
	}

	for _, match := range publicMethodPattern.FindAllSubmatch(src, -1) {
		name := string(match[1])
		if e.excluded(name) {
			continue
		}
		unit.ExposedMethods = append(unit.ExposedMethods, name)
	}

	return unit, true
}

func (e *Extractor) excluded(name string) bool {
	for _, pattern := range e.exclude {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ResourceName derives the resource path segment from a file name:
// UsersController.php becomes "users"
func ResourceName(file, suffix string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if suffix != "" {
		base = strings.TrimSuffix(base, suffix)
	}
	return strings.ToLower(base)
}
