// Package vocab provides a generic find-or-create primitive for vocabulary
// entities that are created lazily on first sight (identifier types,
// encounter roles, encounter types) and reused thereafter.
package vocab

import (
	"context"
	"errors"
)

// ErrNotFound signals that a lookup found no entry. Lookup functions return
// it (or wrap it) to trigger creation.
var ErrNotFound = errors.New("vocabulary entry not found")

// Resolve runs lookup and returns its result when present. When lookup
// reports ErrNotFound, the entry is created instead. Any other lookup or
// create error is returned as is. The read-then-create window is
// best-effort: concurrent resolvers may race and the store's uniqueness
// constraint decides the winner.
func Resolve[T any](
	ctx context.Context,
	lookup func(context.Context) (*T, error),
	create func(context.Context) (*T, error),
) (*T, error) {
	entry, err := lookup(ctx)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return create(ctx)
}
