package roulette

import (
	"github.com/google/uuid"
)

// Spin is one independent draw of a status code and a response body.
type Spin struct {
	ID       string   `json:"id" yaml:"id"`
	Status   int      `json:"status" yaml:"status"`
	Shape    string   `json:"shape" yaml:"shape"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Response Response `json:"response" yaml:"response"`
}

// Spin draws a status code, then a response, under one lock so concurrent
// callers never interleave their draws.
func (g *Generator) Spin() Spin {
	g.mu.Lock()
	status := g.pickStatusLocked()
	resp := g.generateResponseLocked()
	g.stats.Spins++
	g.mu.Unlock()

	spin := Spin{
		ID:       uuid.NewString(),
		Status:   status,
		Shape:    resp.Shape(),
		Kind:     resp.Kind(),
		Response: resp,
	}
	g.log.Debug("spin", "id", spin.ID, "status", spin.Status, "shape", spin.Shape, "kind", spin.Kind)
	return spin
}
