package roulette

// commonStatusCodes are the everyday codes a real API returns.
var commonStatusCodes = []int{200, 400, 401, 403, 404, 429, 500, 502, 503}

// exoticStatusCodes are codes outside the standard registry, or only
// standardized by a single vendor (Cloudflare's 52x, nginx's 499).
var exoticStatusCodes = []int{418, 451, 499, 520, 521, 522, 523, 524, 525, 526}

// CommonStatusCodes returns the standard status codes PickStatus draws from.
func CommonStatusCodes() []int {
	return append([]int(nil), commonStatusCodes...)
}

// ExoticStatusCodes returns the nonstandard status codes PickStatus draws from.
func ExoticStatusCodes() []int {
	return append([]int(nil), exoticStatusCodes...)
}

// IsExoticStatus reports whether code belongs to the exotic set.
func IsExoticStatus(code int) bool {
	for _, c := range exoticStatusCodes {
		if c == code {
			return true
		}
	}
	return false
}

// IsKnownStatus reports whether PickStatus can ever return code.
func IsKnownStatus(code int) bool {
	if IsExoticStatus(code) {
		return true
	}
	for _, c := range commonStatusCodes {
		if c == code {
			return true
		}
	}
	return false
}

// PickStatus returns a status code from the shared generator.
func PickStatus() int {
	return defaultGenerator.PickStatus()
}

// PickStatus returns an exotic status code with probability ExoticRate and a
// common one otherwise. It never fails.
func (g *Generator) PickStatus() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pickStatusLocked()
}

func (g *Generator) pickStatusLocked() int {
	var code int
	exotic := g.rng.Float64() < g.config.ExoticRate
	if exotic {
		code = exoticStatusCodes[g.rng.Intn(len(exoticStatusCodes))]
	} else {
		code = commonStatusCodes[g.rng.Intn(len(commonStatusCodes))]
	}

	g.stats.Statuses++
	g.stats.ByStatus[code]++
	if exotic {
		g.stats.ExoticStatuses++
	}
	return code
}
