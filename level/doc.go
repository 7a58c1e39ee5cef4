// Package level describes puzzle levels and loads level packs.
//
// A Config carries the playable grid size, the time budget, the number of tile
// types and a Goal. Goals form a closed set (clear_all, clear_target) matched
// exhaustively; unknown kinds are rejected by Validate.
//
// Packs are read with spf13/viper from YAML or JSON (by file extension, or an
// explicit format for Parse). Default returns the pack embedded in the binary.
//
// Errors:
//
//   - ErrLevelNotFound: Pack.Level was asked for an id the pack lacks.
//   - ErrInvalidLevel:  a Config or Goal violates its constraints.
//   - ErrInvalidPack:   a pack could not be read or contains duplicate ids.
package level
