// Package game applies player moves to a board and runs one puzzle session.
//
// Elimination:
//
//   - AttemptRemove connects two cells with the path finder and, on success,
//     empties both and returns the path for the renderer. On failure the board
//     is untouched and nil is returned. Callers re-run the solvability
//     guarantor after every success.
//   - AttemptRemoveCopy is the copy-on-write variant: the input board is never
//     modified and a new board is returned even when no pair is removed, so a
//     server-authoritative copy and a client-predicted copy never alias.
//
// Session:
//
//	Generated → Playable ⇄ Selecting → Cleared | Stuck
//
//	A Session owns one board. Start moves it to Playable (or Stuck when the
//	generated board has no move). Click selects a tile; a second click on a
//	matching, connectable tile removes the pair, while a failing click or a
//	re-click of the selected tile returns to Playable without touching the board.
//	After each removal the goal is checked and the guarantor keeps the board
//	playable; when it gives up the session is Stuck until a Shuffle prop finds a
//	move. Finish returns the facts an external persistence layer records.
//
// A Session is not safe for concurrent use; controllers serialize requests
// per session.
package game
