package client

import (
	"context"

	"github.com/quickblog/internal/service"
)

// Capabilities describes the optional operations a backend offers. All
// backends implement list, get, create, and delete.
type Capabilities struct {
	Update bool
	BySlug bool
}

// Backend is the storage strategy behind the facade, selected once at
// construction. Implementations return the package sentinel errors for
// expected outcomes and raw errors for everything else; normalization
// happens in the facade.
type Backend interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]service.Post, error)
	Get(ctx context.Context, id string) (*service.Post, error)
	GetBySlug(ctx context.Context, slug string) (*service.Post, error)
	Create(ctx context.Context, input service.CreateInput) (*service.Post, error)
	Update(ctx context.Context, id string, input service.CreateInput) (*service.Post, error)
	Delete(ctx context.Context, id string) error
	Capabilities() Capabilities
}
