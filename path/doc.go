// Package path provides an immutable walk value: an ordered sequence of
// edges where each edge departs from the previous edge's destination.
//
// Paths extend functionally — Append returns a new Path and never
// mutates the receiver — so search algorithms may share path prefixes
// across frontier states without aliasing hazards.
//
// Cost is the sum of constituent edge weights; Length is the edge
// count. The zero value is a valid empty path (a walk of length zero).
package path
