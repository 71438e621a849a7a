package gridgraph

import (
	"strconv"
	"strings"

	"github.com/veltrane/lodestar/astar"
)

// Manhattan returns the L1 distance to the goal cell as a heuristic.
// Admissible and consistent under Conn4 with terrain costs >= 1.
func Manhattan(goalX, goalY int) astar.Heuristic {
	return func(id string) float64 {
		x, y, ok := parseID(id)
		if !ok {
			return 0 // unknown shape, fall back to uninformed
		}

		return float64(abs(x-goalX) + abs(y-goalY))
	}
}

// Chebyshev returns the L-infinity distance to the goal cell as a
// heuristic. Admissible and consistent under Conn8 with terrain costs
// >= 1, where a diagonal step covers one unit of both axes.
func Chebyshev(goalX, goalY int) astar.Heuristic {
	return func(id string) float64 {
		x, y, ok := parseID(id)
		if !ok {
			return 0
		}
		dx, dy := abs(x-goalX), abs(y-goalY)
		if dx > dy {
			return float64(dx)
		}

		return float64(dy)
	}
}

// parseID decodes the "x,y" vertex identifier produced by ID.
func parseID(id string) (x, y int, ok bool) {
	sx, sy, found := strings.Cut(id, ",")
	if !found {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(sx)
	y, errY := strconv.Atoi(sy)
	if errX != nil || errY != nil {
		return 0, 0, false
	}

	return x, y, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
