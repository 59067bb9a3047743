// Package roster normalizes performer and segment records into an indexed,
// immutable roster: preference tiers, rating tiers and capacity ranges.
//
// Registration order is input order. Every later stage iterates performers
// and segments by their registration index, which keeps runs reproducible.
//
// Load-time normalization never fails; problems become Warning values:
//
//   - duplicate performer or segment names keep the first registration;
//   - preference entries naming unknown segments are dropped;
//   - a segment listed in several preference tiers keeps the strongest claim
//     in the order no > most > okay;
//   - rating entries naming unknown performers are dropped;
//   - a performer rated in several tiers of one segment keeps the highest;
//   - malformed capacity strings fall back to the default range.
//
// Rating lookup is a direct map from performer index to tier.
package roster
