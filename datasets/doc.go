// Package datasets supplies ready-made graphs for experiments and tests.
//
// What
//
//   - Karate(): Zachary's karate club, the classic 34-node / 78-edge
//     undirected social network, embedded so no file I/O is involved.
//   - LoadEdgeList(r, opts...): parse whitespace-separated edge lists
//     with optional weights and comment lines.
//   - CitationNetwork(works, authors, venues, seed): a synthetic typed
//     scholarly graph (work cites work, author authored work, work
//     published-in venue), fully deterministic per seed.
package datasets
