package roster

import (
	"fmt"
	"sort"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	segmentDefault   Range
	performerDefault Range
}

// WithDefaults overrides the fallback capacity ranges.
func WithDefaults(segment, performer Range) Option {
	return func(o *buildOptions) {
		o.segmentDefault = segment
		o.performerDefault = performer
	}
}

// Build normalizes raw records into a Roster.
//
// Steps:
//  1. Register segments (first name wins), parse capacities.
//  2. Register performers (first name wins), parse capacities.
//  3. Resolve preference tiers against segments: no, then most, then okay.
//  4. Resolve rating tiers against performers: tier 5 down to 1.
//
// Build never fails; every dropped datum yields a Warning, in the order above.
func Build(performers []PerformerRecord, segments []SegmentRecord, opts ...Option) (*Roster, []Warning) {
	o := buildOptions{segmentDefault: DefaultSegmentRange, performerDefault: DefaultPerformerRange}
	for _, fn := range opts {
		fn(&o)
	}

	r := &Roster{
		performerIndex: make(map[string]int, len(performers)),
		segmentIndex:   make(map[string]int, len(segments)),
	}
	var warnings []Warning
	warn := func(kind WarningKind, subject, format string, args ...interface{}) {
		warnings = append(warnings, Warning{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)})
	}

	segRecords := make([]SegmentRecord, 0, len(segments))
	for _, rec := range segments {
		if _, dup := r.segmentIndex[rec.Name]; dup {
			warn(WarnDuplicateName, rec.Name, "segment registered twice, keeping the first")
			continue
		}
		capRange, ok := ParseRange(rec.Capacity, o.segmentDefault)
		if !ok && rec.Capacity != "" {
			warn(WarnMalformedCapacity, rec.Name, "capacity %q, using %s", rec.Capacity, capRange)
		}
		r.segmentIndex[rec.Name] = len(r.Segments)
		r.Segments = append(r.Segments, &Segment{
			Name:     rec.Name,
			Index:    len(r.Segments),
			Capacity: capRange,
			rating:   make(map[int]int),
		})
		segRecords = append(segRecords, rec)
	}

	perfRecords := make([]PerformerRecord, 0, len(performers))
	for _, rec := range performers {
		if _, dup := r.performerIndex[rec.Name]; dup {
			warn(WarnDuplicateName, rec.Name, "performer registered twice, keeping the first")
			continue
		}
		capRange, ok := ParseRange(rec.Capacity, o.performerDefault)
		if !ok && rec.Capacity != "" {
			warn(WarnMalformedCapacity, rec.Name, "capacity %q, using %s", rec.Capacity, capRange)
		}
		r.performerIndex[rec.Name] = len(r.Performers)
		r.Performers = append(r.Performers, &Performer{
			Name:       rec.Name,
			Index:      len(r.Performers),
			Capacity:   capRange,
			Experience: rec.Experience,
			no:         make(map[int]struct{}),
		})
		perfRecords = append(perfRecords, rec)
	}

	for i, rec := range perfRecords {
		p := r.Performers[i]
		claimed := make(map[int]string)
		resolve := func(list string, names []string) []int {
			var out []int
			for _, name := range names {
				s, ok := r.segmentIndex[name]
				if !ok {
					warn(WarnUnknownSegment, p.Name, "%s list names unknown segment %q", list, name)
					continue
				}
				if prev, taken := claimed[s]; taken {
					if prev != list {
						warn(WarnDuplicatePreference, p.Name, "segment %q in %s and %s, keeping %s", name, prev, list, prev)
					}
					continue
				}
				claimed[s] = list
				out = append(out, s)
			}
			return out
		}
		p.No = resolve("no", rec.No)
		p.Most = resolve("most", rec.Most)
		p.Okay = resolve("okay", rec.Okay)
		for _, s := range p.No {
			p.no[s] = struct{}{}
		}
	}

	for i, rec := range segRecords {
		seg := r.Segments[i]

		tiers := make([]int, 0, len(rec.Ratings))
		for t := range rec.Ratings {
			tiers = append(tiers, t)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(tiers)))

		for _, t := range tiers {
			if t < MinTier || t > MaxTier {
				warn(WarnBadTier, seg.Name, "tier %d ignored (%d names)", t, len(rec.Ratings[t]))
				continue
			}
			for _, name := range rec.Ratings[t] {
				p, ok := r.performerIndex[name]
				if !ok {
					warn(WarnUnknownPerformer, seg.Name, "tier %d names unknown performer %q", t, name)
					continue
				}
				if prev, rated := seg.rating[p]; rated {
					warn(WarnDuplicateRating, seg.Name, "performer %q at tiers %d and %d, keeping %d", name, prev, t, prev)
					continue
				}
				seg.rating[p] = t
				seg.tiers[t] = append(seg.tiers[t], p)
			}
		}
	}

	return r, warnings
}
