package recommend

import "hash/fnv"

const jitterRange = 0.02

// diversityJitter maps brand+model to a stable value in [-0.02, 0.02].
// An explicit hash keeps the jitter reproducible across processes and
// platforms, with no seeded global generator involved.
func diversityJitter(brand, model string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(brand))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(model))

	// top bits into [0,1), then shift into the signed range
	unit := float64(h.Sum64()>>11) / float64(1<<53)
	return (unit*2 - 1) * jitterRange
}
