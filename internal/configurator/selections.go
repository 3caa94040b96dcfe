package configurator

// Dimension is the user-requested size in an arbitrary supported unit.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Selections is the mutable per-session state of a configuration. It is
// never partially invalid: every mutation re-filters the dependent fields.
type Selections struct {
	MaterialID    string              `json:"materialId,omitempty"`
	PrintMethodID string              `json:"printMethodId,omitempty"`
	FinishingIDs  []string            `json:"finishingIds"`
	Options       map[string][]string `json:"options"`
	Quantity      int                 `json:"quantity"`
	Dimension     *Dimension          `json:"dimension,omitempty"`
}

func (s *Selections) normalize() {
	if s.Quantity < 1 {
		s.Quantity = 1
	}
	if s.FinishingIDs == nil {
		s.FinishingIDs = []string{}
	}
	if s.Options == nil {
		s.Options = map[string][]string{}
	}
}
