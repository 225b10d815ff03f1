// Package truth computes alternative path-importance oracles used as ground
// truth when no planted relevance is available.
//
// What
//
//   - AttributeImportancePaths: score paths by propagating a numeric node
//     attribute (falling back to degree) along the path, attenuated by edge
//     weights.
//   - BetweenGraphPaths: enumerate all simple paths between two endpoint
//     sets (multi-seed) and score them by inverse length.
//   - EgoNetwork / EgoPaths: extract the radius-limited subgraph around a
//     center node and rank the paths inside it by closeness to the center.
//   - Compute: dispatch over the Type enum for experiment wiring.
//
// All functions are pure over the input graph: they never mutate it and are
// deterministic, so the same graph always yields the same oracle.
package truth
