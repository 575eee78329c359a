// Package blob abstracts the persistence medium for the record store: a
// named JSON document that can be read and replaced wholesale. The store
// treats persistence as get/set of a single blob and owns no transactional
// guarantees beyond that.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the name.
// Callers treat it as "no data", not as a failure.
var ErrNotFound = errors.New("blob not found")

// Medium is a named-document persistence medium.
type Medium interface {
	// Get returns the document stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	// Set replaces the document stored under name.
	Set(ctx context.Context, name string, data []byte) error
}
