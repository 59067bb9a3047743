// Package flow computes maximum flow on directed, weighted *core.Graph values.
//
// Capacities are the int64 edge weights. Dinic's algorithm (level graph plus
// blocking flows) is the only entry point:
//
//	opts := flow.DefaultOptions()
//	max, residual, err := flow.Dinic(g, "source", "sink", opts)
//
// Vertices are scanned in registration order and outgoing arcs in edge
// insertion order, so the residual graph returned for a fixed input is
// reproducible run to run.
//
// Errors:
//
//   - ErrSourceNotFound / ErrSinkNotFound when an endpoint is missing.
//   - EdgeError when an edge carries a negative capacity.
//   - ctx.Err() when opts.Ctx is canceled.
//
// Complexity:
//
//   - Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//   - Memory: O(V + E) for the residual capacity map.
package flow
