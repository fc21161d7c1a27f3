package handler

import (
	"github.com/quickblog/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts *service.PostService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(posts *service.PostService) *API {
	return &API{posts: posts}
}
