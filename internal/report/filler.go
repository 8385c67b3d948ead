package report

import "math/rand"

// Filler supplies placeholder hours for chart buckets that have no
// recorded data. It exists so demo charts can look populated without
// the engine silently randomizing real output: series functions take
// nil in production and in tests.
type Filler interface {
	// Hours returns a value in [lo, hi) rounded to one decimal.
	Hours(lo, hi float64) float64
}

// SampleFiller derives placeholder values from a seeded generator, so
// a given seed always produces the same chart.
type SampleFiller struct {
	rng *rand.Rand
}

func NewSampleFiller(seed int64) *SampleFiller {
	return &SampleFiller{rng: rand.New(rand.NewSource(seed))}
}

func (f *SampleFiller) Hours(lo, hi float64) float64 {
	return round1(lo + f.rng.Float64()*(hi-lo))
}
