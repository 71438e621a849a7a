// Package gridgraph turns a 2D grid of integer terrain costs into a
// core.Graph ready for the search packages, and supplies the matching
// distance heuristics for astar.
//
// Cells with value < 1 are impassable walls; passable cells become
// vertices with ID "x,y". An arc u→v costs the terrain value of the
// cell being entered, so a uniform grid of ones is the classic
// unit-cost maze. Connectivity is Conn4 (orthogonal) or Conn8
// (diagonals included).
//
// Manhattan is admissible and consistent under Conn4, Chebyshev under
// Conn8, both assuming a minimum terrain cost of 1.
package gridgraph
