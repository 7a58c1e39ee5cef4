// Package board models the tile grid of a connect-the-pair puzzle.
//
// What:
//
//   - Board stores rows×cols integer cells in row-major order.
//   - Cell 0 (Empty) is the sentinel for "no tile"; any positive value is a tile type.
//   - NewWithBorder pads the playable grid with a permanently empty ring, so a
//     connector path can leave the playable area and come back without a special case.
//   - Clone gives an independent deep copy for trial mutations.
//
// Why:
//
//   - The path finder, pair scanner and generator all need fast, bounds-aware
//     random access to cells and a deterministic row-major enumeration.
//
// Complexity:
//
//   - Get, Set, At, IsEmpty, InBounds: O(1).
//   - Clone, Occupied, TileCount, InnerPositions, String: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyBoard: rows or cols below 1.
//   - ErrNonRectangular: FromRows input rows of differing lengths.
//   - ErrOutOfBounds: Get/Set outside [0,rows)×[0,cols).
//   - ErrInvalidCell: negative tile label.
//
// A Board is owned by one game session and is not safe for concurrent use.
package board
