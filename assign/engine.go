package assign

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lineup/exclusion"
	"github.com/katalvlaran/lineup/roster"
)

// localSearchFloor is the lowest rating tier phase 4 considers.
const localSearchFloor = 3

// Result is the settled outcome of Engine.Run.
type Result struct {
	Assignment *Assignment
	Excluded   []int
	Unassigned []int
	Added      map[Phase]int
	Passes     int
	Warnings   []roster.Warning
}

// Engine runs the four assignment phases over one roster.
type Engine struct {
	roster    *roster.Roster
	policy    *exclusion.Policy
	log       *zap.Logger
	observer  Observer
	threshold float64
	maxPasses int

	assignment *Assignment
	excluded   []bool
	result     *Result
}

// New prepares an engine. A nil policy allows every segment combination.
func New(r *roster.Roster, policy *exclusion.Policy, opts ...Option) *Engine {
	e := &Engine{
		roster:    r,
		policy:    policy,
		log:       zap.NewNop(),
		threshold: exclusion.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxPasses <= 0 {
		e.maxPasses = len(r.Performers)*len(r.Segments) + 1
	}
	e.assignment = NewAssignment(len(r.Performers), len(r.Segments))
	e.excluded = make([]bool, len(r.Performers))

	return e
}

// Run executes all phases once and freezes the assignment. Later calls
// return the same Result.
func (e *Engine) Run() *Result {
	if e.result != nil {
		return e.result
	}

	res := &Result{Added: make(map[Phase]int, len(Phases))}
	res.Excluded = exclusion.ComputeExcludedPerformers(e.roster, e.threshold)
	for _, p := range res.Excluded {
		e.excluded[p] = true
	}
	res.Warnings = append(res.Warnings, exclusion.ExcludedWarnings(e.roster, res.Excluded)...)

	res.Added[PhasePrimary] = e.primary()
	res.Added[PhaseFloor] = e.floor()
	res.Added[PhaseFill] = e.fill()
	res.Added[PhaseLocalSearch], res.Passes = e.localSearch()

	for _, p := range e.roster.Performers {
		if e.excluded[p.Index] || e.assignment.PerformerLoad(p.Index) > 0 {
			continue
		}
		res.Unassigned = append(res.Unassigned, p.Index)
		res.Warnings = append(res.Warnings, roster.Warning{
			Kind:    roster.WarnUnassigned,
			Subject: p.Name,
			Detail:  "no eligible segment after all phases",
		})
	}
	res.Warnings = append(res.Warnings, e.assignment.UnderFilled(e.roster)...)

	e.assignment.Freeze()
	res.Assignment = e.assignment
	e.result = res

	for _, phase := range Phases {
		e.log.Debug("phase summary", zap.Stringer("phase", phase), zap.Int("added", res.Added[phase]))
	}
	e.log.Info("assignment settled",
		zap.Int("relations", e.assignment.Len()),
		zap.Int("excluded", len(res.Excluded)),
		zap.Int("unassigned", len(res.Unassigned)),
		zap.Int("passes", res.Passes),
	)

	return res
}

// CanAdd reports whether performer p may take segment s right now, ignoring
// ratings: s is not refused, neither side is full and no exclusion pair
// would be completed.
func (e *Engine) CanAdd(p, s int) bool {
	return e.canAdd(e.assignment, p, s)
}

// LocalSearchPass runs one extra local-search pass and returns the number of
// additions. After Run the pass works on a scratch copy and leaves the frozen
// assignment untouched; on a fixed point it returns 0.
func (e *Engine) LocalSearchPass() int {
	if e.assignment.Frozen() {
		return e.localSearchPass(e.assignment.Clone(), nil)
	}

	return e.localSearchPass(e.assignment, e.observer)
}

func (e *Engine) canAdd(a *Assignment, p, s int) bool {
	perf := e.roster.Performers[p]
	seg := e.roster.Segments[s]
	switch {
	case perf.Refuses(s):
		return false
	case a.SegmentLoad(s) >= seg.Capacity.Max:
		return false
	case a.PerformerLoad(p) >= perf.Capacity.Max:
		return false
	case e.policy.Blocks(a.byPerf[p], s):
		return false
	}

	return true
}

// eligible adds the rating and novelty requirements to canAdd.
func (e *Engine) eligible(a *Assignment, p, s int) bool {
	return e.roster.Rating(p, s) > 0 && !a.Has(p, s) && e.canAdd(a, p, s)
}

// tryAdd relates p and s when eligible.
func (e *Engine) tryAdd(a *Assignment, obs Observer, phase Phase, p, s int) bool {
	if !e.eligible(a, p, s) {
		return false
	}
	if err := a.Add(p, s); err != nil {
		e.log.Error("add rejected", zap.Int("performer", p), zap.Int("segment", s), zap.Error(err))
		return false
	}
	if obs != nil {
		obs.Assigned(phase, e.roster.Performers[p].Name, e.roster.Segments[s].Name, e.roster.Rating(p, s))
	}

	return true
}

// primary gives each performer the first eligible "most" segment.
func (e *Engine) primary() int {
	added := 0
	for _, perf := range e.roster.Performers {
		if e.excluded[perf.Index] {
			continue
		}
		for _, s := range perf.Most {
			if e.tryAdd(e.assignment, e.observer, PhasePrimary, perf.Index, s) {
				added++
				break
			}
		}
	}

	return added
}

// floor places performers still at zero: "okay" first, then any segment.
func (e *Engine) floor() int {
	added := 0
	for _, perf := range e.roster.Performers {
		if e.excluded[perf.Index] || e.assignment.PerformerLoad(perf.Index) > 0 {
			continue
		}
		placed := false
		for _, s := range perf.Okay {
			if e.tryAdd(e.assignment, e.observer, PhaseFloor, perf.Index, s) {
				placed = true
				break
			}
		}
		for s := 0; !placed && s < len(e.roster.Segments); s++ {
			placed = e.tryAdd(e.assignment, e.observer, PhaseFloor, perf.Index, s)
		}
		if placed {
			added++
		}
	}

	return added
}

// fill adds every eligible "most" then "okay" segment up to capacity.
func (e *Engine) fill() int {
	added := 0
	for _, perf := range e.roster.Performers {
		if e.excluded[perf.Index] {
			continue
		}
		for _, list := range [][]int{perf.Most, perf.Okay} {
			for _, s := range list {
				if e.assignment.PerformerLoad(perf.Index) >= perf.Capacity.Max {
					break
				}
				if e.tryAdd(e.assignment, e.observer, PhaseFill, perf.Index, s) {
					added++
				}
			}
		}
	}

	return added
}

// localSearch repeats passes until one adds nothing or maxPasses is reached.
func (e *Engine) localSearch() (added, passes int) {
	for passes < e.maxPasses {
		n := e.localSearchPass(e.assignment, e.observer)
		passes++
		added += n
		e.log.Debug("local search pass", zap.Int("pass", passes), zap.Int("added", n))
		if n == 0 {
			return added, passes
		}
	}
	e.log.Warn("local search stopped at pass limit", zap.Int("passes", passes))

	return added, passes
}

// localSearchPass pulls highly rated performers into segments below maximum.
func (e *Engine) localSearchPass(a *Assignment, obs Observer) int {
	added := 0
	for _, seg := range e.roster.Segments {
		for t := roster.MaxTier; t >= localSearchFloor; t-- {
			for _, p := range seg.Tier(t) {
				if a.SegmentLoad(seg.Index) >= seg.Capacity.Max {
					break
				}
				if e.excluded[p] {
					continue
				}
				if e.tryAdd(a, obs, PhaseLocalSearch, p, seg.Index) {
					added++
				}
			}
		}
	}

	return added
}
