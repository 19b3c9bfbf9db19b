package ports

import "context"

// DeletionLock marks a freelancer as being deleted so concurrent deletions
// of the same record do not race.
type DeletionLock interface {
	// Acquire returns acquired=false when another deletion already holds the
	// marker. On success token identifies this holder.
	Acquire(ctx context.Context, freelancerID string) (token string, acquired bool, err error)
	// Release removes the marker only while it is still held under token.
	Release(ctx context.Context, freelancerID, token string) error
}
