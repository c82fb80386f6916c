package roulette

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/getmockd/roulette/pkg/logging"
)

// Generator draws status codes and response bodies from a random source.
// It is safe for concurrent use.
type Generator struct {
	config Config
	shapes []Shape
	rng    *rand.Rand
	mu     sync.Mutex
	stats  *Stats
	log    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-spin debug output.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

var defaultGenerator = New()

// New returns a generator with the default config and a time-seeded source.
func New() *Generator {
	g, err := NewGenerator(DefaultConfig(), nil)
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}
	return g
}

// NewGenerator creates a generator from config. A nil rng is replaced by a
// source seeded from the current time.
func NewGenerator(config Config, rng *rand.Rand, opts ...Option) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roulette config: %w", err)
	}

	shapes, err := config.selectShapes()
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Generator{
		config: config,
		shapes: shapes,
		rng:    rng,
		stats:  NewStats(),
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// GenerateResponse returns a response from the shared generator.
func GenerateResponse() Response {
	return defaultGenerator.GenerateResponse()
}

// GenerateResponse returns the success shape with probability SuccessRate
// and otherwise a uniformly chosen malformed template. Every call returns a
// freshly built value. It never fails.
func (g *Generator) GenerateResponse() Response {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateResponseLocked()
}

func (g *Generator) generateResponseLocked() Response {
	var resp Response
	if g.rng.Float64() < g.config.SuccessRate {
		resp = g.successLocked()
		g.stats.SuccessResponses++
	} else {
		resp = g.shapes[g.rng.Intn(len(g.shapes))].New()
	}

	g.stats.Responses++
	g.stats.ByShape[resp.Shape()]++
	return resp
}

// successLocked builds the success payload. The timestamp is deliberately
// impossible and extra_field and message vary between empty-ish values.
func (g *Generator) successLocked() Response {
	extras := []interface{}{nil, "", []interface{}{}, map[string]interface{}{}, 0}
	messages := []interface{}{"", nil, successMessage}

	return Structured{Name: ShapeSuccess, Fields: map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"id":          g.rng.Intn(1000) + 1,
			"name":        sampleDataName,
			"timestamp":   malformedTimestamp,
			"extra_field": extras[g.rng.Intn(len(extras))],
		},
		"message": messages[g.rng.Intn(len(messages))],
	}}
}

// Stats returns a copy of the draw counters.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats.clone()
}

// ResetStats clears the draw counters.
func (g *Generator) ResetStats() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats = NewStats()
}
