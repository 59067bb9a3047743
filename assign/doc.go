// Package assign runs the four-phase capacitated assignment of performers
// to segments.
//
// Phases, each iterating in registration order:
//
//  1. Primary: every performer gets the first eligible segment of "most".
//  2. Floor: performers still empty take the first eligible "okay" segment,
//     else the first eligible segment overall.
//  3. Fill-up: performers add every eligible "most" then "okay" segment
//     until their capacity maximum.
//  4. Local search: segments below their maximum pull in unassigned
//     performers rated 5 down to 3, repeated until a pass adds nothing.
//
// A pair (performer, segment) is eligible when the segment rates the
// performer, the pair is not already related and CanAdd holds: the segment
// is not on the performer's "no" list, neither side is at its maximum and no
// configured exclusion pair would be completed.
//
// The engine is additive only and always terminates. It is a reproducible
// heuristic, not a stable or optimal matching. Performers excluded for
// chronically low ratings are skipped by every phase.
//
// The resulting Assignment is frozen and safe for concurrent reads. The
// Engine itself is not safe for concurrent use.
package assign
