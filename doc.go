// Package lineup assigns performers to show segments and plans the running
// order of the show.
//
// A run has two halves:
//
//	assignment — four order-sensitive phases (primary, floor, fill,
//	             local search) place performers into segments within both
//	             sides' capacity ranges, honoring "no" lists, low-rating
//	             exclusion and mutually exclusive segment pairs.
//	ordering   — segments sharing performers form a weighted conflict
//	             graph; a minimum spanning forest of that graph, walked in
//	             depth-first preorder, becomes the show order.
//
// Packages, leaves first:
//
//	core/         — thread-safe Graph with registration-ordered iteration
//	prim_kruskal/ — minimum spanning forest (Kruskal, Prim)
//	dfs/          — depth-first traversal with forest mode and hooks
//	flow/         — Dinic max-flow, used for the capacity ceiling
//	roster/       — performer and segment normalization, capacity ranges
//	exclusion/    — low-rating exclusion and segment pair rules
//	assign/       — the relation table and the four-phase engine
//	conflict/     — shared-performer conflict graph
//	order/        — spanning forest + preorder show order
//	report/       — output records, CSV files, console summary
//	store/        — SQLite run history
//	ingest/       — sign-up sheet CSV and YAML roster loaders
//	sample/       — seeded synthetic rosters
//	pipeline/     — everything above, end to end
//
// Quick ASCII example of the ordering half:
//
//	    Tap ─3─ Jazz
//	      \      /
//	       1    2
//	        \  /
//	        Swing
//
// The forest keeps Tap─Swing and Swing─Jazz, so the show runs
// Tap, Swing, Jazz.
//
//	go install github.com/katalvlaran/lineup/cmd/lineup@latest
package lineup
