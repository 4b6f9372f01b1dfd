package dome

import (
	"math"

	"github.com/chaos-architect/astral_engine/internal/geom"
)

// MaxDraws bounds rejection sampling per background star. When a star is
// still rejected after this many candidates, the last candidate is kept.
const MaxDraws = 1000

const (
	baseDensity = 0.1
	bandSummer  = 0.6 // ra in (17,21)
	bandWinter  = 0.4 // ra in (4,8)
	sparseKeep  = 0.05

	minBackgroundMag  = 3.5
	backgroundMagSpan = 4.5
)

// GenerateBackground scatters n faint stars over the sphere, denser along two
// right-ascension bands that approximate the Milky Way. It always returns
// exactly n stars.
func GenerateBackground(n int, rng geom.Source) []Star {
	if n <= 0 {
		return nil
	}
	stars := make([]Star, 0, n)
	for len(stars) < n {
		var ra, dec float64
		for draw := 1; ; draw++ {
			ra = rng.Float64() * 24
			dec = math.Asin(2*rng.Float64()-1) * 180 / math.Pi
			if accept(ra, rng) || draw >= MaxDraws {
				break
			}
		}
		stars = append(stars, Star{
			RA:    ra,
			Dec:   dec,
			Color: spectralColor(rng.Float64()),
			Mag:   minBackgroundMag + rng.Float64()*backgroundMagSpan,
		})
	}
	return stars
}

// accept applies the band-density test, with a small chance of keeping a
// rejected candidate so the sky between bands is not empty.
func accept(ra float64, rng geom.Source) bool {
	p := Density(ra)
	if rng.Float64() > p {
		return rng.Float64() <= sparseKeep
	}
	return true
}

// Density is the acceptance probability of a candidate at ra.
func Density(ra float64) float64 {
	p := baseDensity
	if ra > 17 && ra < 21 {
		p += bandSummer
	}
	if ra > 4 && ra < 8 {
		p += bandWinter
	}
	return p
}

// spectralColor buckets r into six stellar classes, hottest first.
func spectralColor(r float64) string {
	switch {
	case r > 0.90:
		return "#9bb0ff" // O/B
	case r > 0.75:
		return "#b0cfff" // A
	case r > 0.60:
		return "#f8f7ff" // F
	case r > 0.45:
		return "#fff4ea" // G
	case r > 0.30:
		return "#ffeeb0" // K
	default:
		return "#ffcc6f" // M
	}
}
