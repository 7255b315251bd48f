// Package model defines the data structures used throughout ghexplorer.
//
// # RepositorySummary
//
// The [RepositorySummary] struct is the only board entity. Its JSON form is
// the persisted and wire shape:
//
//	{"full_name": "facebook/react",
//	 "description": "A library",
//	 "owner": {"login": "facebook", "avatar_url": "https://..."}}
//
// Values crossing a boundary (the lookup response, the stored list) go
// through [RepositorySummary.Validate] or [DecodeSummaries] before use.
//
// # Config
//
// The [Config] struct holds application configuration:
//
//	type Config struct {
//	    API     APIConfig     // lookup base URL and timeout
//	    Storage StorageConfig // key-value database file
//	    UI      UIConfig      // message locale
//	}
package model
