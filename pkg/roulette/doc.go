// Package roulette generates deliberately broken API responses for testing
// HTTP clients.
//
// A spin is two independent draws: a status code and a response body. The
// status code usually comes from a small set of common HTTP codes and
// occasionally from a set of unofficial ones. The body is either a
// "success" payload with subtly wrong fields or one of ten malformed
// templates (plain text on a JSON endpoint, XML, nested errors, nulls where
// arrays belong, and so on). Status and body are never correlated.
//
// # Usage
//
// The package-level functions use a shared, time-seeded generator:
//
//	status := roulette.PickStatus()
//	resp := roulette.GenerateResponse()
//
//	switch r := resp.(type) {
//	case roulette.Structured:
//	    fmt.Println(r.Fields["status"])
//	case roulette.Raw:
//	    fmt.Println(r.Text)
//	}
//
// For reproducible runs build a Generator with an explicit source:
//
//	g, err := roulette.NewGenerator(roulette.DefaultConfig(), rand.New(rand.NewSource(42)))
//
// # Fixture Server
//
// Handler serves one spin per request, which makes it easy to point a
// client under test at an httptest.Server:
//
//	srv := httptest.NewServer(roulette.Handler(g))
//	defer srv.Close()
//
// Classify maps a received body back to the shape that produced it, so
// client tests can assert on what they were handed.
package roulette
