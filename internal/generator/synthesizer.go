package generator

import (
	"regexp"
	"strings"
)

// DefaultPrefix is prepended to every synthesized path
const DefaultPrefix = "/api"

// IDHintNote is attached to records whose method name mentions "get"
const IDHintNote = "(optional /{id})"

// verbPrefixes is checked in order; the first matching prefix wins
var verbPrefixes = []struct {
	prefix string
	verb   Verb
}{
	{"get", VerbGet},
	{"post", VerbPost},
	{"put", VerbPut},
	{"delete", VerbDelete},
	{"patch", VerbPatch},
}

var idHintPattern = regexp.MustCompile(`(?i)get`)

// Synthesizer turns exposed method names into endpoint records.
// It holds no state besides the path prefix and never fails.
type Synthesizer struct {
	prefix string
}

// NewSynthesizer creates a synthesizer for the given path prefix
func NewSynthesizer(prefix string) *Synthesizer {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Synthesizer{prefix: prefix}
}

// Prefix returns the normalized path prefix
func (s *Synthesizer) Prefix() string {
	return s.prefix
}

// Synthesize produces exactly one record for resource and method
func (s *Synthesizer) Synthesize(resource, method string) EndpointRecord {
	verb, tail := DetectVerb(method)

	pathTail := camelToKebab(tail)
	if one := singular(resource); one != "" {
		pathTail = strings.TrimPrefix(pathTail, one+"-")
	}

	path := s.prefix + "/" + resource
	if pathTail != "" {
		path += "/" + pathTail
	}

	record := EndpointRecord{
		Verb:         verb,
		Path:         path,
		SourceMethod: method,
		Resource:     resource,
	}
	if idHintPattern.MatchString(method) {
		record.Note = IDHintNote
	}
	return record
}

// DetectVerb splits method into its verb and the remaining tail.
// Names without a known verb prefix are GET with the whole name as tail.
func DetectVerb(method string) (Verb, string) {
	for _, vp := range verbPrefixes {
		if strings.HasPrefix(method, vp.prefix) {
			return vp.verb, method[len(vp.prefix):]
		}
	}
	return VerbGet, method
}
