// Package trailhead is a toolkit for composing graph-exploration
// algorithms from small, swappable parts instead of writing each
// algorithm as a monolith.
//
// 🚀 The core idea
//
//	One traversal loop, three pluggable abstractions:
//		• Frontier — decides which discovered node is processed next
//		  (Queue, Stack, MinHeap, MaxHeap)
//		• Visitor  — decides which edges to cross, records visits,
//		  decides when to halt (Simple, Weighted)
//		• Policy   — composable boolean rules (And/Or/Not) validating
//		  candidates at build time and terminating traversals at run time
//
// The same loop becomes BFS, DFS or Dijkstra purely by swapping the
// Frontier and Visitor handed to Graph.Traverse:
//
//	Queue   + Simple   → breadth-first search
//	Stack   + Simple   → depth-first search
//	MinHeap + Weighted → Dijkstra-style shortest path
//
// Graphs are built once — a Sampler turns domain data (grids, matrices,
// adjacency lists) into candidates, node and edge policies filter them —
// and stay immutable afterwards, so one Graph safely backs any number of
// concurrent traversals, each with its own Frontier and Visitor.
//
// The pieces live in seven subpackages:
//
//	graph/    — immutable Graph, NodeID, the Traverse orchestration loop
//	frontier/ — Queue, Stack, MinHeap, MaxHeap ordering containers
//	policy/   — generic Policy contract and And/Or/Not combinators
//	visitor/  — Simple and Weighted presets, ParentTracker/CostTracker,
//	            PathTo reconstruction
//	policies/ — preset rules: value filters, structural rules, budgets,
//	            GoalReached/OpeningExhausted termination
//	builder/  — Sampler contract and policy-filtered graph construction
//	sampler/  — grid, matrix and adjacency-list samplers, YAML fixtures
//
// A minimal picture:
//
//	0──1──2
//	│     │
//	3──4──5
//
//	a 2×3 grid sampled with Conn4, traversed breadth-first from 0.
//
// The package docs of graph and visitor spell out the exact loop
// ordering contract and the relaxation semantics weighted traversal
// relies on.
//
//	go get github.com/wrenfield/trailhead
package trailhead
