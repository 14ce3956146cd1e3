package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic PCG source for the seed. A zero seed is
// replaced by the current time so unseeded runs differ.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0)), seed
}
