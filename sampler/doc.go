// Package sampler provides the preset Samplers that turn common
// domain-data shapes into candidate nodes and edges for the builder:
//
//   - Grid: a 2D grid of cell values with 4- or 8-connectivity; nodes
//     carry the cell value, edges are unweighted.
//   - Adjacency: a boolean adjacency matrix; a true cell (i, j) becomes
//     the unweighted edge i→j.
//   - WeightMatrix: a float64 adjacency matrix; a non-NaN cell (i, j)
//     becomes the edge i→j with the cell as weight.
//   - AdjacencyList: per-node neighbor-index lists, unweighted.
//
// Every preset is deterministic: candidate order, and therefore
// identifier assignment, is row-major (grids, matrices) or list order.
//
// LoadGridFixture reads grid domain data from YAML, validating shape
// and connectivity before any sampling happens.
package sampler
