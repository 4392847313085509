// Package digraph is the directed-graph container the arborescence
// engine operates on. Unlike graph.Graph (an adjacency-map keyed by
// neighbor with a weight multiset), Digraph keeps two single-weight
// maps per vertex (outgoing target->weight and incoming
// source->weight), kept mutually consistent on every Connect and
// Disconnect, because Chu-Liu/Edmonds repeatedly asks both "what
// leaves u?" and "what enters v?"
package digraph
