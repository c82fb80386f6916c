package roulette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrUnknownShape is returned when a body matches no known shape.
	ErrUnknownShape = errors.New("body matches no known shape")
	// ErrAmbiguousShape is returned when a body matches more than one shape.
	ErrAmbiguousShape = errors.New("body matches more than one shape")
)

type compiledShape struct {
	name   string
	schema *jsonschema.Schema
}

var (
	schemaOnce  sync.Once
	schemas     []compiledShape
	schemaError error
)

// compileSchemas compiles the schema of every structured shape once.
func compileSchemas() ([]compiledShape, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		for _, s := range AllShapes() {
			if s.Kind != KindStructured {
				continue
			}
			url := s.Name + ".json"
			if err := compiler.AddResource(url, strings.NewReader(s.Schema)); err != nil {
				schemaError = fmt.Errorf("failed to add schema for %s: %w", s.Name, err)
				return
			}
			sch, err := compiler.Compile(url)
			if err != nil {
				schemaError = fmt.Errorf("failed to compile schema for %s: %w", s.Name, err)
				return
			}
			schemas = append(schemas, compiledShape{name: s.Name, schema: sch})
		}
	})
	return schemas, schemaError
}

// Classify reports which shape produced body. JSON objects are checked
// against each structured shape's schema; anything else is compared with
// the raw templates.
func Classify(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)

	for _, s := range catalog {
		if s.match != nil && s.match(trimmed) {
			return s.Name, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: body is not JSON", ErrUnknownShape)
	}
	if _, ok := v.(map[string]interface{}); !ok {
		return "", fmt.Errorf("%w: body is not a JSON object", ErrUnknownShape)
	}

	compiled, err := compileSchemas()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range compiled {
		if c.schema.Validate(v) == nil {
			matches = append(matches, c.name)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrUnknownShape
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousShape, strings.Join(matches, ", "))
	}
}

// ClassifyResponse classifies a generated response by its wire body.
func ClassifyResponse(resp Response) (string, error) {
	body, err := resp.Body()
	if err != nil {
		return "", fmt.Errorf("failed to encode response: %w", err)
	}
	return Classify(body)
}
