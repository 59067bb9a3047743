// Package sample generates synthetic rosters for demos, load tests and
// property tests. Output is a pure function of the Config and the rng seed.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lineup/roster"
)

// Bounds is an inclusive count range.
type Bounds struct {
	Min int
	Max int
}

// SegmentSpec names a segment and the number of performers it needs.
type SegmentSpec struct {
	Name string
	Size int
}

// Config controls generation.
type Config struct {
	Performers int
	Segments   []SegmentSpec
	Most       Bounds
	Okay       Bounds
	No         Bounds
	Experience []string
	Capacities []string
}

// tierShare is the number of performers drawn per rating tier, as a share
// of the segment size. Tiers are drawn 5 down to 1 without replacement.
var tierShare = [roster.MaxTier + 1]float64{0, 0.3, 0.7, 1.0, 0.7, 0.5}

// DefaultConfig mirrors a mid-sized studio showcase.
func DefaultConfig() Config {
	return Config{
		Performers: 22,
		Segments: []SegmentSpec{
			{"Lotus Lanterns", 8}, {"Jasmine", 10}, {"Blue Ridge", 6},
			{"Monsoon", 12}, {"Snow Willow", 8}, {"Upstream", 6},
			{"Riverside", 10}, {"Summit", 8}, {"Harvest Parade", 12},
			{"Swan", 6}, {"Lifetime", 8}, {"Green Horizon", 10},
			{"Jade Bird", 8},
		},
		Most:       Bounds{Min: 1, Max: 4},
		Okay:       Bounds{Min: 2, Max: 6},
		No:         Bounds{Min: 0, Max: 3},
		Experience: []string{"none", "beginner", "intermediate", "advanced"},
		Capacities: []string{"1-2", "2-3", "3-4", "4-5", "5+"},
	}
}

// Generate draws performer and segment records.
//
// Each performer picks "most" segments first, then "no" from what is left,
// then "okay" from the remainder, so the three lists are disjoint. Each
// segment rates performers tier 5 down to 1 without replacement.
func Generate(cfg Config, rng *rand.Rand) ([]roster.PerformerRecord, []roster.SegmentRecord) {
	names := make([]string, len(cfg.Segments))
	for i, s := range cfg.Segments {
		names[i] = s.Name
	}
	people := make([]string, cfg.Performers)
	for i := range people {
		people[i] = fmt.Sprintf("name%d", i+1)
	}

	performers := make([]roster.PerformerRecord, 0, cfg.Performers)
	for _, name := range people {
		pool := append([]string(nil), names...)
		var most, no, okay []string
		most, pool = draw(rng, pool, cfg.Most)
		no, pool = draw(rng, pool, cfg.No)
		okay, _ = draw(rng, pool, cfg.Okay)

		performers = append(performers, roster.PerformerRecord{
			Name:       name,
			Capacity:   pick(rng, cfg.Capacities),
			Experience: pick(rng, cfg.Experience),
			Most:       most,
			Okay:       okay,
			No:         no,
		})
	}

	segments := make([]roster.SegmentRecord, 0, len(cfg.Segments))
	for _, spec := range cfg.Segments {
		pool := append([]string(nil), people...)
		ratings := make(map[int][]string, roster.MaxTier)
		for t := roster.MaxTier; t >= roster.MinTier; t-- {
			n := int(float64(spec.Size) * tierShare[t])
			var chosen []string
			chosen, pool = take(rng, pool, n)
			if len(chosen) > 0 {
				ratings[t] = chosen
			}
		}
		segments = append(segments, roster.SegmentRecord{
			Name:     spec.Name,
			Capacity: fmt.Sprintf("%d", spec.Size),
			Ratings:  ratings,
		})
	}

	return performers, segments
}

// draw picks a count in b (clamped to the pool) and takes that many items.
func draw(rng *rand.Rand, pool []string, b Bounds) ([]string, []string) {
	hi := b.Max
	if hi > len(pool) {
		hi = len(pool)
	}
	lo := b.Min
	if lo > hi {
		lo = hi
	}
	if hi <= 0 {
		return nil, pool
	}

	return take(rng, pool, lo+rng.Intn(hi-lo+1))
}

// take removes n random items from pool and returns them with the remainder.
func take(rng *rand.Rand, pool []string, n int) ([]string, []string) {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil, pool
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return append([]string(nil), pool[:n]...), pool[n:]
}

func pick(rng *rand.Rand, from []string) string {
	if len(from) == 0 {
		return ""
	}

	return from[rng.Intn(len(from))]
}
