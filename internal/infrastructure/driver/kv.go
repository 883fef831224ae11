package driver

import (
	"context"
)

// KeyValueDB define a key-value storage interface
type KeyValueDB interface {
	SetMembers(ctx context.Context, key string) ([]string, error)
	// SetToggle atomically flip membership of member in the set at key,
	// returning the new membership state
	SetToggle(ctx context.Context, key string, member string) (bool, error)
	Ping() error
}
