package contract

import "context"

// IItemLocker serializes work on a single item across callers.
// Lock blocks until the key is free or ctx is done; the returned func releases it.
// Distinct keys never contend.
type IItemLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
