package roulette

import (
	"net/http"
	"strconv"
)

// Headers set on every fixture response.
const (
	HeaderShape = "X-Roulette-Shape"
	HeaderSpin  = "X-Roulette-Spin"
)

// Handler returns an http.Handler that answers every request with a fresh
// spin from g. The Content-Type is always application/json, including for
// the plain text and XML shapes. Status and body are not correlated.
func Handler(g *Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spin := g.Spin()

		body, err := spin.Response.Body()
		if err != nil {
			g.log.Error("failed to encode spin", "id", spin.ID, "shape", spin.Shape, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Content-Length", strconv.Itoa(len(body)))
		h.Set(HeaderShape, spin.Shape)
		h.Set(HeaderSpin, spin.ID)
		w.WriteHeader(spin.Status)

		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(body); err != nil {
			g.log.Debug("failed to write spin body", "id", spin.ID, "error", err)
		}
	})
}
