package roster

import "fmt"

// Range is an inclusive capacity range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}

	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Tier bounds. Tier 0 means unrated.
const (
	MinTier = 1
	MaxTier = 5
)

var (
	// DefaultSegmentRange applies to segments without a valid capacity.
	DefaultSegmentRange = Range{Min: 1, Max: 1}

	// DefaultPerformerRange applies to performers without a valid capacity.
	DefaultPerformerRange = Range{Min: 1, Max: 2}
)

// PerformerRecord is the raw performer input.
type PerformerRecord struct {
	Name       string   `yaml:"name" validate:"required"`
	Capacity   string   `yaml:"capacity"`
	Experience string   `yaml:"experience"`
	Most       []string `yaml:"most"`
	Okay       []string `yaml:"okay"`
	No         []string `yaml:"no"`
}

// SegmentRecord is the raw segment input. Ratings maps tier (1..5) to
// performer names.
type SegmentRecord struct {
	Name     string           `yaml:"name" validate:"required"`
	Capacity string           `yaml:"capacity"`
	Ratings  map[int][]string `yaml:"ratings"`
}

// WarningKind classifies a non-fatal problem.
type WarningKind string

const (
	WarnDuplicateName       WarningKind = "duplicate_name"
	WarnUnknownSegment      WarningKind = "unknown_segment"
	WarnDuplicatePreference WarningKind = "duplicate_preference"
	WarnUnknownPerformer    WarningKind = "unknown_performer"
	WarnDuplicateRating     WarningKind = "duplicate_rating"
	WarnBadTier             WarningKind = "bad_tier"
	WarnMalformedCapacity   WarningKind = "malformed_capacity"
	WarnInvalidRule         WarningKind = "invalid_exclusion_rule"
	WarnExcluded            WarningKind = "excluded"
	WarnUnassigned          WarningKind = "unassigned"
	WarnUnderMin            WarningKind = "under_min"
)

// Warning is a side-channel diagnostic. Subject names the performer or
// segment the warning is about.
type Warning struct {
	Kind    WarningKind
	Subject string
	Detail  string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Subject)
	}

	return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Subject, w.Detail)
}

// Performer is a normalized performer. Preference tiers hold segment indices
// in input order and are pairwise disjoint.
type Performer struct {
	Name       string
	Index      int
	Capacity   Range
	Experience string
	Most       []int
	Okay       []int
	No         []int

	no map[int]struct{}
}

// Refuses reports whether segment index s is on the performer's "no" list.
func (p *Performer) Refuses(s int) bool {
	_, ok := p.no[s]

	return ok
}

// Segment is a normalized segment.
type Segment struct {
	Name     string
	Index    int
	Capacity Range

	rating map[int]int
	tiers  [MaxTier + 1][]int
}

// Rating returns the tier performer index p holds in this segment, 0 if unrated.
func (s *Segment) Rating(p int) int {
	return s.rating[p]
}

// Tier returns the performer indices rated at tier t, in input order.
func (s *Segment) Tier(t int) []int {
	if t < MinTier || t > MaxTier {
		return nil
	}

	return s.tiers[t]
}

// Rated returns the number of performers holding any rating.
func (s *Segment) Rated() int {
	return len(s.rating)
}

// Roster is the immutable, indexed input of one run.
type Roster struct {
	Performers []*Performer
	Segments   []*Segment

	performerIndex map[string]int
	segmentIndex   map[string]int
}

// PerformerIndex resolves a performer name.
func (r *Roster) PerformerIndex(name string) (int, bool) {
	i, ok := r.performerIndex[name]

	return i, ok
}

// SegmentIndex resolves a segment name.
func (r *Roster) SegmentIndex(name string) (int, bool) {
	i, ok := r.segmentIndex[name]

	return i, ok
}

// Rating returns rating(p, s) by indices.
func (r *Roster) Rating(p, s int) int {
	return r.Segments[s].Rating(p)
}

// SegmentNames returns segment names in registration order.
func (r *Roster) SegmentNames() []string {
	out := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		out[i] = s.Name
	}

	return out
}
