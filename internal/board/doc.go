// Package board implements the repository board: a list of repository
// summaries built from user lookups and mirrored into a key-value store.
//
// # Submitting a query
//
// A query runs in three steps so the network call can leave the UI event
// loop:
//
//  1. [Board.Begin] validates the identifier and returns a [Submission]
//  2. [Board.Fetch] performs the lookup; it reads no mutable board state
//  3. [Board.Complete] applies the [Result]
//
// Begin and Complete mutate the board and must run on one goroutine. Fetch
// may run anywhere. Overlapping submissions are not coordinated: results are
// applied in the order Complete is called, which in the dashboard is
// completion order, not submission order. [Board.Submit] runs all three
// steps synchronously.
//
// # Persistence
//
// The whole list is serialized under [StorageKey] after every change,
// including once right after loading. A stored value that fails to decode is
// copied to [CorruptKey] and the board starts empty.
package board
