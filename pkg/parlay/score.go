package parlay

import (
	"math"
	"math/bits"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Score computes the compounding parlay multiplier of an ordered,
// validated leg sequence. The accumulator starts at the fixed-point unit
// and each leg multiplies it by its snapshotted odd, dividing the scale
// back out at every step. Integer arithmetic only, so the result is
// bit-identical across platforms; float math would drift. Each step runs
// through a 128-bit intermediate product, and a score past the uint64
// range clamps to the maximum rather than wrapping.
func Score(ordered []models.Leg) uint64 {
	acc := models.OddsScale
	for _, leg := range ordered {
		hi, lo := bits.Mul64(acc, uint64(leg.SelectedOdd))
		if hi >= models.OddsScale {
			return math.MaxUint64
		}
		acc, _ = bits.Div64(hi, lo, models.OddsScale)
	}
	return acc
}
