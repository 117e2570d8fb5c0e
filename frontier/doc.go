// Package frontier provides the exploration-order containers that give a
// traversal its algorithmic identity: Queue (FIFO) yields breadth-first
// search, Stack (LIFO) yields depth-first search, and MinHeap (smallest
// priority key first) yields Dijkstra-style shortest path. MaxHeap is the
// mirror of MinHeap for best-first searches that maximize a score.
//
// Frontiers are pure ordering containers over raw node identifiers plus
// an optional priority key. They never inspect the graph or the visitor,
// and they never deduplicate: the same identifier may be held several
// times (weighted relaxation re-pushes an already-seen node with a better
// key), and visited-tracking is the Visitor's responsibility.
//
// Ordering guarantees:
//
//   - Queue: pop returns the earliest-pushed not-yet-popped identifier.
//   - Stack: pop returns the most-recently-pushed identifier.
//   - MinHeap: pop returns the identifier with the smallest key supplied
//     at push time; ties break by insertion order for reproducibility.
//   - MaxHeap: as MinHeap with the largest key first.
//
// Every frontier is single-traversal state: create a fresh instance per
// Traverse call and discard it afterwards.
//
// Complexity: Push/Pop are O(1) amortized for Queue and Stack, and
// O(log n) for MinHeap and MaxHeap.
package frontier
