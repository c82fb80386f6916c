package cli

import (
	"io"

	"github.com/getmockd/roulette/pkg/render"
	"github.com/getmockd/roulette/pkg/roulette"
)

// RunDemo spins the shared generator once and writes a human-readable
// report to w.
func RunDemo(w io.Writer) error {
	status := roulette.PickStatus()
	resp := roulette.GenerateResponse()

	return writeDemo(w, roulette.Spin{
		Status:   status,
		Shape:    resp.Shape(),
		Kind:     resp.Kind(),
		Response: resp,
	})
}

func writeDemo(w io.Writer, spin roulette.Spin) error {
	if err := writeLine(w, "\nSpinning the API roulette...\n"); err != nil {
		return err
	}
	if err := render.Render(w, spin, render.FormatText); err != nil {
		return err
	}
	return writeLine(w, "\nGood luck with that integration!")
}
