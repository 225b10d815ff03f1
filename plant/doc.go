// Package plant synthesizes ground-truth and noise paths into a core.Graph
// for controlled ranking experiments.
//
// What
//
//   - PlantGroundTruthPaths: wire new paths between endpoint pairs with a
//     target MI signal strength (weak / medium / strong), returning the
//     planted paths, a relevance map, and planting metadata.
//   - AddNoisePaths: add deliberately low-MI paths as distractors.
//   - PlantHeterogeneousPaths: plant paths whose nodes follow a typed
//     template (e.g. Work -> Author -> Work).
//   - PlantCitationPaths: citation-network patterns (direct-citation-chain,
//     co-citation-bridge, bibliographic-coupling, author-mediated,
//     venue-mediated).
//   - PathFollowsTemplate: pure positional type-conformance predicate.
//
// How signal strength works
//
//	Each planted path is a spine of nodes joined by edges, plus a set of
//	witness nodes wired to every spine node. Witnesses are exactly the
//	shared neighbors the MI measure counts, so the witness count calibrates
//	the per-edge MI band: 1 witness lands below 0.3 (weak), 4 around 0.5
//	(medium), 16 above 0.7 (strong). The boundary values are tunable
//	constants validated by the monotonicity tests, not contractual numbers.
//
// Determinism
//
//	Every random choice flows through a *rand.Rand built by RNGFromSeed;
//	node and edge IDs are derived from (prefix, path index, position).
//	Identical (graph state, config, seed) inputs produce bit-identical
//	planted path sets. DeriveSeed(parent, stream) gives experiment code
//	independent per-trial streams so parallel and sequential execution
//	agree.
//
// Errors
//
//	ErrNilGraph      - nil graph.
//	ErrEmptyGraph    - planting into a graph with no nodes.
//	ErrBadConfig     - non-positive path count or inverted length range.
//	ErrShortTemplate - heterogeneous template with fewer than 2 types.
//	ErrMissingType   - graph has no node of a type the template requires.
//	ErrScarceNodes   - too few typed nodes for a citation pattern.
package plant
