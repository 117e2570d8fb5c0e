// Package builder turns domain data into an immutable graph.Graph
// through three pluggable pieces: a Sampler converts the domain data
// into candidate nodes and edges, a node policy decides which node
// candidates become nodes, and an edge policy decides which edge
// candidates become edges.
//
// Identifiers are assigned densely starting at 0 in candidate-emission
// order, to every node candidate, accepted or not. A rejected candidate
// simply leaves its slot absent, so structural rules such as "no edge
// may reference a dropped node" stay expressible as ordinary edge
// policies (see policies.DenyDanglingEdge) rather than being hardcoded
// here.
//
// Construction-time exclusion is silent and expected: a candidate
// failing its policy is omitted, never surfaced as an error. Build fails
// only on caller misuse (nil sampler) or when the sampled data is
// structurally inconsistent in a way no policy resolved: an accepted
// edge pointing outside the node table.
//
// All node candidates are judged before any edge candidate, so edge
// policies always see the complete node population in their Draft
// context.
package builder
