package retrieval

import "context"

// Repository executes retrieve requests against the store.
type Repository interface {
	Retrieve(ctx context.Context, entity Entity, req Request) (Result, error)
}
