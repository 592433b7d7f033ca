// Package dgraph is your in-memory playground for building, exploring,
// and analyzing graphs in Go.
//
// 🚀 What is dgraph?
//
//	A generic, dependency-light library that brings together:
//
//	  • Core primitives: dense-id vertices & identity-stable edges over
//	    two interchangeable storage backends (adjacency list & matrix)
//	  • Directed and undirected semantics behind one Graph[V, E] facade
//	  • Classic algorithms: BFS, DFS, Dijkstra, Prim, topological sort,
//	    bipartite coloring
//
// ✨ Why choose dgraph?
//
//   - Generics-first       — attach your own vertex/edge attribute records
//   - Deterministic        — ascending-id vertex order, backend-native edge order
//   - Extensible           — enqueue predicates and visit hooks on every kernel
//   - Pure Go              — no cgo, storage is plain slices and maps
//
// Under the hood, everything is organized under seven subpackages:
//
//	attr/      — built-in attribute record presets (Empty, Weight, Color)
//	graph/     — Graph, Vertex, Edge types and the two storage backends
//	gconf/     — enumerated configuration knobs
//	traverse/  — shared BFS / DFS / priority-first-search kernels
//	algo/      — Dijkstra, Prim, topological sort, bipartite coloring
//	topology/  — clique, biclique, cycle, path and binary-tree builders
//	gsf/       — text serialization and human-readable rendering
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four vertices and four edges: bipartite,
//	spanned by any three of its edges, and breadth-first ordered
//	0, 1, 2, 3 from vertex 0.
//
//	go get github.com/katalvlaran/dgraph
package dgraph
