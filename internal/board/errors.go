package board

import "fmt"

// ValidationError is returned when a query is submitted without an identifier.
type ValidationError struct{}

func (e *ValidationError) Error() string {
	return "repository identifier is empty"
}

// StorageError wraps a store failure for key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
