// Package render turns spins into human- or machine-readable output.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/jp"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/roulette/pkg/roulette"
)

// Format selects how a spin is rendered.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrNotStructured is returned by Extract for raw responses.
	ErrNotStructured = errors.New("response is not structured")
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Body renders a response body for display: indented JSON for structured
// responses, the text verbatim for raw ones.
func Body(resp roulette.Response) (string, error) {
	switch r := resp.(type) {
	case roulette.Structured:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.Fields); err != nil {
			return "", fmt.Errorf("failed to encode %s body: %w", r.Name, err)
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	case roulette.Raw:
		return r.Text, nil
	default:
		return "", fmt.Errorf("unsupported response type %T", resp)
	}
}

// Render writes spin to w in the given format.
func Render(w io.Writer, spin roulette.Spin, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(spin)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(spin); err != nil {
			return fmt.Errorf("failed to encode spin as yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		body, err := Body(spin.Response)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Status Code: %d\nResponse Type: %s\nResponse:\n%s\n", spin.Status, spin.Kind, body)
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Extract evaluates a JSONPath expression against a structured response.
func Extract(resp roulette.Response, expr string) ([]interface{}, error) {
	s, ok := resp.(roulette.Structured)
	if !ok {
		return nil, fmt.Errorf("%w: shape %s", ErrNotStructured, resp.Shape())
	}

	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	return x.Get(s.Fields), nil
}
