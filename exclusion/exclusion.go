// Package exclusion derives globally excluded performers and enforces
// configured mutually exclusive segment pairs.
package exclusion

import (
	"fmt"

	"github.com/katalvlaran/lineup/roster"
)

// DefaultThreshold is the share of tier-1 ratings at which a performer is excluded.
const DefaultThreshold = 0.6

// lowTier is the rating tier counted toward exclusion.
const lowTier = roster.MinTier

// Rule names two segments a performer may never hold together.
type Rule struct {
	A string `koanf:"a" yaml:"a"`
	B string `koanf:"b" yaml:"b"`
}

// ComputeExcludedPerformers returns, in registration order, the performers
// rated at tier 1 by at least threshold of all segments. With no segments
// nobody is excluded.
func ComputeExcludedPerformers(r *roster.Roster, threshold float64) []int {
	total := len(r.Segments)
	if total == 0 {
		return nil
	}

	lowCount := make([]int, len(r.Performers))
	for _, s := range r.Segments {
		for _, p := range s.Tier(lowTier) {
			lowCount[p]++
		}
	}

	var excluded []int
	for p, n := range lowCount {
		if float64(n)/float64(total) >= threshold {
			excluded = append(excluded, p)
		}
	}

	return excluded
}

// ExcludedWarnings reports every excluded performer.
func ExcludedWarnings(r *roster.Roster, excluded []int) []roster.Warning {
	out := make([]roster.Warning, 0, len(excluded))
	for _, p := range excluded {
		out = append(out, roster.Warning{
			Kind:    roster.WarnExcluded,
			Subject: r.Performers[p].Name,
			Detail:  "rated at the lowest tier by too many segments",
		})
	}

	return out
}

// Policy answers exclusion-pair queries by segment index.
type Policy struct {
	pairs    map[[2]int]struct{}
	partners map[int][]int
}

// NewPolicy resolves rules against r. Rules naming an unknown segment, or the
// same segment twice, are dropped with a warning; repeated rules collapse.
func NewPolicy(r *roster.Roster, rules []Rule) (*Policy, []roster.Warning) {
	p := &Policy{
		pairs:    make(map[[2]int]struct{}, len(rules)),
		partners: make(map[int][]int),
	}
	var warnings []roster.Warning
	for _, rule := range rules {
		a, okA := r.SegmentIndex(rule.A)
		b, okB := r.SegmentIndex(rule.B)
		switch {
		case !okA || !okB:
			warnings = append(warnings, roster.Warning{
				Kind:    roster.WarnInvalidRule,
				Subject: fmt.Sprintf("%s/%s", rule.A, rule.B),
				Detail:  "unknown segment",
			})
			continue
		case a == b:
			warnings = append(warnings, roster.Warning{
				Kind:    roster.WarnInvalidRule,
				Subject: fmt.Sprintf("%s/%s", rule.A, rule.B),
				Detail:  "segment paired with itself",
			})
			continue
		}
		key := pairKey(a, b)
		if _, dup := p.pairs[key]; dup {
			continue
		}
		p.pairs[key] = struct{}{}
		p.partners[a] = append(p.partners[a], b)
		p.partners[b] = append(p.partners[b], a)
	}

	return p, warnings
}

// Len returns the number of distinct pairs.
func (p *Policy) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// IsPairExcluded reports whether (a,b) is a configured unordered pair.
func (p *Policy) IsPairExcluded(a, b int) bool {
	if p == nil {
		return false
	}
	_, ok := p.pairs[pairKey(a, b)]

	return ok
}

// Blocks reports whether adding candidate to held would complete a pair.
func (p *Policy) Blocks(held []int, candidate int) bool {
	if p == nil {
		return false
	}
	partners := p.partners[candidate]
	if len(partners) == 0 {
		return false
	}
	for _, s := range held {
		for _, q := range partners {
			if s == q {
				return true
			}
		}
	}

	return false
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
