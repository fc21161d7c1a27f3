package blob

import (
	"context"
	"errors"
)

// ErrKeyNotFound 表示键不存在，调用方据此区分“未找到”与存储故障。
var ErrKeyNotFound = errors.New("blob: key not found")

// Store is the key→document contract the post store depends on.
// Implementations guarantee per-key atomicity only; List returns a
// point-in-time snapshot of keys that may race with concurrent writes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]string, error)
}
