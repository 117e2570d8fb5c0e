package sampler

import (
	"github.com/wrenfield/trailhead/builder"
	"github.com/wrenfield/trailhead/graph"
)

// Connectivity selects grid neighborhood: orthogonal only (Conn4) or
// orthogonal plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 connects each cell to N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the four diagonals.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Grid samples a 2D grid of cell values: one node candidate per cell in
// row-major order, and an unweighted edge candidate from each cell to
// every in-bounds neighbor under the chosen connectivity. Rows may have
// differing lengths; neighbors are resolved against the actual row
// widths.
//
// T is the cell value type and becomes the node payload.
type Grid[T any] struct {
	conn Connectivity
}

// NewGrid returns a grid sampler with the given connectivity.
func NewGrid[T any](conn Connectivity) *Grid[T] {
	return &Grid[T]{conn: conn}
}

// SampleNodes emits one candidate per cell, row-major.
func (s *Grid[T]) SampleNodes(cells [][]T) []builder.NodeCandidate[T] {
	var out []builder.NodeCandidate[T]
	for _, row := range cells {
		for _, v := range row {
			out = append(out, builder.NodeCandidate[T]{Value: v})
		}
	}

	return out
}

// SampleEdges emits an unweighted edge to every in-bounds neighbor of
// every cell, in row-major cell order and connectivity-offset order.
func (s *Grid[T]) SampleEdges(cells [][]T) []builder.EdgeCandidate {
	offsets := offsets4
	if s.conn == Conn8 {
		offsets = offsets8
	}
	// Identifier of the first cell of each row, matching SampleNodes'
	// row-major emission.
	rowStart := make([]int, len(cells))
	pos := 0
	for y, row := range cells {
		rowStart[y] = pos
		pos += len(row)
	}

	var out []builder.EdgeCandidate
	for y, row := range cells {
		for x := range row {
			from := graph.NodeID(rowStart[y] + x)
			for _, off := range offsets {
				ny, nx := y+off[0], x+off[1]
				if ny < 0 || ny >= len(cells) || nx < 0 || nx >= len(cells[ny]) {
					continue
				}
				out = append(out, builder.EdgeCandidate{
					From:   from,
					To:     graph.NodeID(rowStart[ny] + nx),
					Weight: 1,
				})
			}
		}
	}

	return out
}
