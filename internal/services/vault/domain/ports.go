package domain

import "context"

// KV is the persistence seam. Get returns defaults for keys the store does
// not hold; Set writes every key in the bag atomically
type KV interface {
	Get(ctx context.Context, defaults Bag) (Bag, error)
	Set(ctx context.Context, bag Bag) error
}

// Listener receives changes in commit order
type Listener func(ctx context.Context, c Change)

// Mutation edits s in place and returns the number of records it touched
type Mutation func(s *Snapshot) (count int, err error)

// RepositoryPort is what the API modules use
type RepositoryPort interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
	Update(ctx context.Context, reason string, fn Mutation) (Snapshot, error)
	Subscribe(l Listener) (cancel func())
	NextID() int64
}
