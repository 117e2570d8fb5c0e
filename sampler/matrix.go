package sampler

import (
	"math"

	"github.com/wrenfield/trailhead/builder"
	"github.com/wrenfield/trailhead/graph"
)

// Unit is the payload of samplers whose nodes carry no data.
type Unit = struct{}

// Adjacency samples a boolean adjacency matrix: one payload-free node
// per row, and an unweighted edge i→j for every true cell (i, j).
type Adjacency struct{}

// NewAdjacency returns a boolean-matrix sampler.
func NewAdjacency() *Adjacency { return &Adjacency{} }

// SampleNodes emits one candidate per matrix row.
func (s *Adjacency) SampleNodes(m [][]bool) []builder.NodeCandidate[Unit] {
	return unitCandidates(len(m))
}

// SampleEdges emits i→j for every true cell, row-major.
func (s *Adjacency) SampleEdges(m [][]bool) []builder.EdgeCandidate {
	var out []builder.EdgeCandidate
	for i, row := range m {
		for j, connected := range row {
			if !connected {
				continue
			}
			out = append(out, builder.EdgeCandidate{
				From:   graph.NodeID(i),
				To:     graph.NodeID(j),
				Weight: 1,
			})
		}
	}

	return out
}

// WeightMatrix samples a float64 adjacency matrix: one payload-free node
// per row, and an edge i→j carrying the cell value for every non-NaN
// cell (i, j). NaN marks "no edge"; zero is a valid weight.
type WeightMatrix struct{}

// NewWeightMatrix returns a weighted-matrix sampler.
func NewWeightMatrix() *WeightMatrix { return &WeightMatrix{} }

// None is the "no edge" marker for WeightMatrix cells.
func None() float64 { return math.NaN() }

// SampleNodes emits one candidate per matrix row.
func (s *WeightMatrix) SampleNodes(m [][]float64) []builder.NodeCandidate[Unit] {
	return unitCandidates(len(m))
}

// SampleEdges emits i→j with the cell's weight for every non-NaN cell,
// row-major.
func (s *WeightMatrix) SampleEdges(m [][]float64) []builder.EdgeCandidate {
	var out []builder.EdgeCandidate
	for i, row := range m {
		for j, w := range row {
			if math.IsNaN(w) {
				continue
			}
			out = append(out, builder.EdgeCandidate{
				From:   graph.NodeID(i),
				To:     graph.NodeID(j),
				Weight: w,
			})
		}
	}

	return out
}

// AdjacencyList samples per-node neighbor lists: one payload-free node
// per list entry, and an unweighted edge i→n for every neighbor n of
// entry i.
type AdjacencyList struct{}

// NewAdjacencyList returns a neighbor-list sampler.
func NewAdjacencyList() *AdjacencyList { return &AdjacencyList{} }

// SampleNodes emits one candidate per list entry.
func (s *AdjacencyList) SampleNodes(lists [][]graph.NodeID) []builder.NodeCandidate[Unit] {
	return unitCandidates(len(lists))
}

// SampleEdges emits i→n for every neighbor n of entry i, in list order.
func (s *AdjacencyList) SampleEdges(lists [][]graph.NodeID) []builder.EdgeCandidate {
	var out []builder.EdgeCandidate
	for i, neighbors := range lists {
		for _, n := range neighbors {
			out = append(out, builder.EdgeCandidate{
				From:   graph.NodeID(i),
				To:     n,
				Weight: 1,
			})
		}
	}

	return out
}

func unitCandidates(n int) []builder.NodeCandidate[Unit] {
	out := make([]builder.NodeCandidate[Unit], n)

	return out
}
