package roulette

// Stats tracks what a generator has handed out.
type Stats struct {
	Spins            int64            `json:"spins"`
	Statuses         int64            `json:"statuses"`
	ExoticStatuses   int64            `json:"exoticStatuses"`
	Responses        int64            `json:"responses"`
	SuccessResponses int64            `json:"successResponses"`
	ByShape          map[string]int64 `json:"byShape"`
	ByStatus         map[int]int64    `json:"byStatus"`
}

// NewStats creates an empty stats tracker.
func NewStats() *Stats {
	return &Stats{
		ByShape:  make(map[string]int64),
		ByStatus: make(map[int]int64),
	}
}

// ExoticRate is the observed fraction of exotic status codes.
func (s Stats) ExoticRate() float64 {
	if s.Statuses == 0 {
		return 0
	}
	return float64(s.ExoticStatuses) / float64(s.Statuses)
}

// SuccessRate is the observed fraction of success-shaped responses.
func (s Stats) SuccessRate() float64 {
	if s.Responses == 0 {
		return 0
	}
	return float64(s.SuccessResponses) / float64(s.Responses)
}

func (s *Stats) clone() Stats {
	out := *s
	out.ByShape = make(map[string]int64, len(s.ByShape))
	for k, v := range s.ByShape {
		out.ByShape[k] = v
	}
	out.ByStatus = make(map[int]int64, len(s.ByStatus))
	for k, v := range s.ByStatus {
		out.ByStatus[k] = v
	}
	return out
}
