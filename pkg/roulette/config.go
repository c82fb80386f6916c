package roulette

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Default probabilities.
const (
	DefaultSuccessRate = 0.30
	DefaultExoticRate  = 0.20
)

// ErrNoShapes is returned when the shape filter leaves nothing to pick from.
var ErrNoShapes = errors.New("shape filter matches no shapes")

// Config controls how a Generator draws.
type Config struct {
	// SuccessRate is the probability that GenerateResponse returns the
	// success shape instead of a malformed template.
	SuccessRate float64 `json:"successRate" yaml:"successRate"`

	// ExoticRate is the probability that PickStatus returns a nonstandard code.
	ExoticRate float64 `json:"exoticRate" yaml:"exoticRate"`

	// Shapes restricts the malformed catalog to names matching any of these
	// glob patterns. Empty means all ten templates.
	Shapes []string `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// DefaultConfig returns the stock probabilities over the full catalog.
func DefaultConfig() Config {
	return Config{
		SuccessRate: DefaultSuccessRate,
		ExoticRate:  DefaultExoticRate,
	}
}

// validateProbability checks that a probability value is in the valid range [0.0, 1.0].
func validateProbability(value float64, fieldName string) error {
	if value < 0.0 || value > 1.0 {
		return fmt.Errorf("%s must be between 0.0 and 1.0, got %v", fieldName, value)
	}
	return nil
}

// Validate checks the rates and the shape patterns.
func (c Config) Validate() error {
	if err := validateProbability(c.SuccessRate, "successRate"); err != nil {
		return err
	}
	if err := validateProbability(c.ExoticRate, "exoticRate"); err != nil {
		return err
	}
	_, err := c.selectShapes()
	return err
}

// selectShapes returns the catalog entries matched by the Shapes patterns,
// in catalog order.
func (c Config) selectShapes() ([]Shape, error) {
	if len(c.Shapes) == 0 {
		return Shapes(), nil
	}

	for _, pattern := range c.Shapes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid shape pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var selected []Shape
	for _, s := range catalog {
		for _, pattern := range c.Shapes {
			ok, err := doublestar.Match(pattern, s.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid shape pattern %q: %w", pattern, err)
			}
			if ok {
				selected = append(selected, s)
				break
			}
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoShapes, c.Shapes)
	}
	return selected, nil
}
