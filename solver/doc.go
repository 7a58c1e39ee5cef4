// Package solver finds playable moves on a board and keeps a board playable.
//
// What:
//
//   - FindAnyPair scans tiles in row-major order and returns the first pair
//     (i<j, same type) the path finder can connect. It is both the hint source
//     and the solvability probe.
//   - AllPairs lists every connectable pair in the same order.
//   - Shuffle permutes tile types over the occupied cells (Fisher–Yates),
//     never changing which cells are occupied or the multiset of types.
//   - EnsureHasMove probes, shuffles and retries up to MaxAttempts times, then
//     probes once more and reports the result.
//
// Why:
//
//   - Removing a pair can strand the remaining tiles; a bounded
//     shuffle-and-retry loop restores a move in practice without a full
//     solvability proof.
//
// Limits:
//
//	EnsureHasMove is a heuristic. On sparse or adversarial layouts it can
//	legitimately return false after exhausting its attempts; callers treat that
//	as "possibly unsolvable" and offer a forced reshuffle or a fresh board.
//	A cleared board has no move, so callers check board.Cleared first.
//
// Determinism:
//
//	Scanning is deterministic for a fixed board. Shuffling draws from the
//	supplied *rand.Rand; a nil source falls back to a time-seeded one and is
//	not reproducible. Tests inject rand.New(rand.NewSource(seed)).
//
// Complexity (k = tiles on board):
//
//   - FindAnyPair, AllPairs: O(k²) path-finder calls.
//   - Shuffle: O(rows×cols).
//   - EnsureHasMove: O(MaxAttempts × k²) path-finder calls.
package solver
