package session

import "context"

// Store keys owned by the session manager. No other component writes them.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store is the durable key/value surface the session survives restarts in.
// A missing key yields (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs in a single transaction.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
