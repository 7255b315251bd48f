// Package database provides the key-value storage layer for ghexplorer.
//
// The [Store] interface is a single string-keyed slot per key: [Store.Get]
// returns the whole value and whether it exists, [Store.Set] overwrites it.
// Callers serialize their own values.
//
// # Backends
//
// The on-disk backend is selected at build time using build tags:
//   - Default: BoltDB ([NewBolt])
//   - With -tags sqlite: SQLite via modernc.org/sqlite ([NewSQLite])
//
// [Open] returns whichever backend was compiled in, and [FileName] names its
// default file. [NewMemory] returns an in-process store for tests and
// throwaway sessions.
package database
