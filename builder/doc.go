// Package builder constructs canonical graph fixtures: paths, cycles,
// stars, complete graphs and seeded sparse random graphs. The intended
// audience is tests and benchmarks that need a deterministic topology
// without hand-writing edge lists.
//
// Determinism contract: the same shape, size, options and seed always
// produce an identical graph, byte for byte of its vertex and edge
// order.
package builder
