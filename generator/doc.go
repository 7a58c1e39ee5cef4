// Package generator builds playable boards from a level configuration.
//
// Generate allocates a bordered board of innerRows×innerCols playable cells,
// lays out cells/2 tile pairs whose types cycle through 1..tileTypes for a
// near-uniform frequency, independently shuffles the fill order of the
// playable positions and the sequence of pair labels, zips them together and
// runs the solvability guarantor once before returning.
//
// Randomness comes from WithRand or WithSeed. Without either, a time-seeded
// source is used and the output is not reproducible; tests always inject one.
//
// Errors:
//
//   - ErrOddCellCount:       innerRows×innerCols is odd; fatal, never retried.
//   - level.ErrInvalidLevel: non-positive grid size or tile-type count.
package generator
