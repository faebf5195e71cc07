package generator

import "go.uber.org/zap/zapcore"

// Verb is the HTTP method of an inferred endpoint
type Verb string

// Supported verbs, in prefix-detection priority order
const (
	VerbGet    Verb = "GET"
	VerbPost   Verb = "POST"
	VerbPut    Verb = "PUT"
	VerbDelete Verb = "DELETE"
	VerbPatch  Verb = "PATCH"
)

// Verbs lists every verb a record may carry
var Verbs = []Verb{VerbGet, VerbPost, VerbPut, VerbDelete, VerbPatch}

// IsVerb reports whether s is one of the enumerated verbs
func IsVerb(s string) bool {
	for _, v := range Verbs {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ResourceUnit is one source file mapped to one REST resource
type ResourceUnit struct {
	File           string
	ClassName      string
	ResourceName   string
	ExposedMethods []string
}

// EndpointRecord is one inferred route
type EndpointRecord struct {
	Verb         Verb   `json:"verb" yaml:"verb"`
	Path         string `json:"path" yaml:"path"`
	SourceMethod string `json:"method" yaml:"method"`
	Note         string `json:"note,omitempty" yaml:"note,omitempty"`
	Resource     string `json:"resource" yaml:"resource"`
	SourceFile   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface.
func (r EndpointRecord) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("verb", string(r.Verb))
	enc.AddString("path", r.Path)
	enc.AddString("method", r.SourceMethod)
	if r.Note != "" {
		enc.AddString("note", r.Note)
	}
	return nil
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface.
func (u ResourceUnit) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", u.File)
	enc.AddString("class", u.ClassName)
	enc.AddString("resource", u.ResourceName)
	enc.AddInt("methods", len(u.ExposedMethods))
	return nil
}
