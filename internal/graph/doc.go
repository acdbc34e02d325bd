// Package graph is the validated, in-memory representation of a feature
// roadmap. It takes the flat feature and dependency lists from the model,
// checks the structural invariants (known endpoints, no self-loops, unique
// feature ids), and produces an immutable Graph with dense integer node
// indices and both forward and reverse adjacency for the analysis passes
// that follow.
package graph
