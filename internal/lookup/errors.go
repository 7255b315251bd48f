package lookup

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v82/github"
)

// LookupError wraps any failure to obtain a summary for Identifier.
// StatusCode is zero when no HTTP response was received.
type LookupError struct {
	Identifier string
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup %s: status %d: %v", e.Identifier, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("lookup %s: %v", e.Identifier, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// statusCode extracts the HTTP status from go-github errors.
func statusCode(resp *github.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}

	var er *github.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		return er.Response.StatusCode
	}

	return 0
}
