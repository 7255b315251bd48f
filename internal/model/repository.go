package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RoutePrefix is the navigation prefix for repository detail routes.
const RoutePrefix = "/repositories/"

// Owner is the account that owns a repository.
type Owner struct {
	// Login is the account name (e.g., "facebook")
	Login string `json:"login"`

	// AvatarURL points to the owner's avatar image
	AvatarURL string `json:"avatar_url"`
}

// RepositorySummary is the subset of a repository lookup kept on the board.
// Entries are immutable once fetched.
type RepositorySummary struct {
	// FullName is the owner/name identifier
	FullName string `json:"full_name"`

	// Description may be empty
	Description string `json:"description"`

	// Owner of the repository
	Owner Owner `json:"owner"`
}

// Route returns the detail route for the repository.
func (r RepositorySummary) Route() string {
	return RoutePrefix + r.FullName
}

// Validate reports whether the summary is usable as a board entry.
func (r RepositorySummary) Validate() error {
	owner, name, ok := strings.Cut(r.FullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("full_name %q is not of the form owner/name", r.FullName)
	}

	if r.Owner.Login == "" {
		return errors.New("owner.login is empty")
	}

	if r.Owner.AvatarURL != "" {
		u, err := url.Parse(r.Owner.AvatarURL)
		if err != nil {
			return fmt.Errorf("owner.avatar_url: %w", err)
		}

		if !u.IsAbs() {
			return fmt.Errorf("owner.avatar_url %q is not absolute", r.Owner.AvatarURL)
		}
	}

	return nil
}

// DecodeError reports a list value that failed to parse or validate.
// Index is -1 when the value is not a JSON array at all.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode repository list: %v", e.Err)
	}

	return fmt.Sprintf("decode repository list: entry %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeSummaries parses a serialized repository list. Every entry must pass
// Validate; a single bad entry rejects the whole value.
func DecodeSummaries(data []byte) ([]RepositorySummary, error) {
	var raw []json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	out := make([]RepositorySummary, 0, len(raw))

	for i, item := range raw {
		var r RepositorySummary

		if err := json.Unmarshal(item, &r); err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		if err := r.Validate(); err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		out = append(out, r)
	}

	return out, nil
}

// EncodeSummaries serializes the list in order. A nil list encodes as [].
func EncodeSummaries(repos []RepositorySummary) ([]byte, error) {
	if repos == nil {
		repos = []RepositorySummary{}
	}

	return json.Marshal(repos)
}
