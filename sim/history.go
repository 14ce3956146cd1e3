package sim

import "github.com/sheikhrachel/petridish/model"

// History remembers the hashes of recent generations to spot still lifes and
// short oscillators.
type History struct {
	window int
	hashes []string
}

// NewHistory keeps the last window generations. A window of 0 disables detection.
func NewHistory(window int) *History {
	return &History{window: max(0, window)}
}

// Observe records g and returns the period of the cycle it closes, or 0 when
// g matches none of the remembered generations. A still life has period 1.
func (h *History) Observe(g *model.Grid) (period int) {
	if h.window == 0 {
		return 0
	}

	hash := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last window states
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}
	return period
}
