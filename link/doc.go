// Package link decides whether two same-typed tiles can be joined by an
// orthogonal corridor with a bounded number of bends, and returns that corridor.
//
// What
//
//   - Breadth-first search over states (position, last direction, turn count).
//   - From each state the search walks in a straight line in each of the four
//     directions (up, right, down, left) through empty cells; every cell walked
//     becomes a new state. Changing direction costs one turn; the first move is free.
//   - The walk may step onto the destination even though it holds a tile.
//   - States are deduplicated by (position, direction, turns) and pruned once the
//     turn count would exceed MaxTurns (2 in the classic game).
//
// Determinism
//
//	Because every transition is unweighted, the first path found uses the fewest
//	turns. Ties go to the first path discovered under the fixed direction order
//	up, right, down, left. The search always starts from the row-major-earlier
//	endpoint, so Connect(a, b) and Connect(b, a) return exact reverses.
//
// Memory layout
//
//	States live in an arena addressed by integer handles with explicit
//	back-pointers; the arena is also the FIFO queue. Its capacity is
//	preallocated to rows×cols×4×(MaxTurns+1)+1 and kept between calls, so a
//	Finder reused by a pair scanner allocates only once per board size.
//
// Complexity (N = rows×cols, k = MaxTurns)
//
//   - Time:   O(N×4×(k+1)×(rows+cols)) worst case (each state walks a line).
//   - Memory: O(N×4×(k+1)).
//
// Usage
//
//	path := link.Connect(b, a, c) // nil when not connectable
//
//	f, err := link.NewFinder(link.WithMaxTurns(1))
//	if err != nil {
//		// ErrOptionViolation
//	}
//	path = f.Connect(b, a, c)
//
// A Finder is not safe for concurrent use; give each goroutine its own.
package link
