package roulette

import (
	"encoding/json"
	"sort"
)

// Kind reports whether a response body is a structured value or a raw string.
type Kind string

const (
	// KindStructured is a JSON object body.
	KindStructured Kind = "structured"
	// KindRaw is a non-JSON body such as plain text or XML.
	KindRaw Kind = "raw"
)

// Response is a generated response body. It is either Structured or Raw.
type Response interface {
	// Shape returns the name of the shape that produced the response.
	Shape() string
	// Kind reports the body type.
	Kind() Kind
	// Body returns the bytes to put on the wire.
	Body() ([]byte, error)

	isResponse()
}

// Structured is a mapping body. Values are strings, ints, nil, nested
// mappings or empty containers.
type Structured struct {
	Name   string
	Fields map[string]interface{}
}

// Shape implements Response.
func (s Structured) Shape() string { return s.Name }

// Kind implements Response.
func (s Structured) Kind() Kind { return KindStructured }

// Body returns the fields encoded as compact JSON.
func (s Structured) Body() ([]byte, error) {
	return json.Marshal(s.Fields)
}

// Keys returns the top-level field names, sorted.
func (s Structured) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes the fields as a JSON object.
func (s Structured) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields)
}

// MarshalYAML encodes the fields as a YAML mapping.
func (s Structured) MarshalYAML() (interface{}, error) {
	return s.Fields, nil
}

func (Structured) isResponse() {}

// Raw is a string body that is not JSON.
type Raw struct {
	Name string
	Text string
}

// Shape implements Response.
func (r Raw) Shape() string { return r.Name }

// Kind implements Response.
func (r Raw) Kind() Kind { return KindRaw }

// Body returns the text verbatim.
func (r Raw) Body() ([]byte, error) {
	return []byte(r.Text), nil
}

// MarshalJSON encodes the text as a JSON string.
func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Text)
}

// MarshalYAML encodes the text as a YAML scalar.
func (r Raw) MarshalYAML() (interface{}, error) {
	return r.Text, nil
}

func (Raw) isResponse() {}
