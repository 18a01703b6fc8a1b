package engine

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// NewRand returns a PCG generator derived from seed. The same seed always gives
// the same sequence; an empty seed gives a random one.
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	hi := xxhash.Sum64String(seed)
	lo := xxhash.Sum64String(seed + "#stream")
	return rand.New(rand.NewPCG(hi, lo))
}
