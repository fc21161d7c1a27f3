package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/quickblog/internal/config"
	"github.com/quickblog/internal/service"
)

const maxTags = 5

// Facade 是展示层访问文章数据的唯一入口：一次性选定后端策略，
// 探测失败或从未配置时按固定策略降级，绝不让读路径抛错。
type Facade struct {
	backend      Backend
	configured   bool
	probeTimeout time.Duration
	probeTTL     time.Duration

	mu       sync.Mutex
	probedAt time.Time
	probeOK  bool
}

// New selects a backend from the configuration. An unconfigured or
// unknown backend kind yields a facade that serves the degraded paths
// only; construction itself never fails for that case.
func New(cfg config.AppConfig) (*Facade, error) {
	f := &Facade{
		probeTimeout: cfg.ProbeTimeout,
		probeTTL:     cfg.ProbeCacheTTL,
	}

	switch cfg.BackendKind {
	case "http":
		if !cfg.IsBackendConfigured() {
			return f, nil
		}
		f.backend = NewHTTPBackend(cfg.BackendBaseURL, 10*time.Second)
		f.configured = true
	case "relational":
		if !cfg.IsDatabaseConfigured() {
			return f, nil
		}
		backend, err := openRelationalBackend(cfg)
		if err != nil {
			return nil, fmt.Errorf("open relational backend: %w", err)
		}
		f.backend = backend
		f.configured = true
	}
	return f, nil
}

// NewWithBackend wires an explicit backend, used by tests and by
// callers that manage their own storage handles.
func NewWithBackend(backend Backend, probeTimeout, probeTTL time.Duration) *Facade {
	return &Facade{
		backend:      backend,
		configured:   backend != nil,
		probeTimeout: probeTimeout,
		probeTTL:     probeTTL,
	}
}

// available reports whether the backend can be reached right now. The
// probe result is cached with an explicit expiry so a down backend
// costs at most one timed-out probe per TTL window.
func (f *Facade) available(ctx context.Context) bool {
	if !f.configured {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.probedAt.IsZero() && time.Since(f.probedAt) < f.probeTTL {
		return f.probeOK
	}

	probeCtx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	err := f.backend.Ping(probeCtx)
	f.probedAt = time.Now()
	f.probeOK = err == nil
	if err != nil {
		log.Printf("backend probe failed: %v", err)
	}
	return f.probeOK
}

// GetAllPosts returns every post newest-first. When the backend is
// unconfigured, unreachable, or errors mid-call, it returns an empty
// slice; callers substitute SamplePosts.
func (f *Facade) GetAllPosts(ctx context.Context) []service.Post {
	if !f.available(ctx) {
		return []service.Post{}
	}

	posts, err := f.backend.List(ctx)
	if err != nil {
		log.Printf("list posts failed: %v", err)
		return []service.Post{}
	}
	if posts == nil {
		posts = []service.Post{}
	}
	return posts
}

// GetPostByID fetches one post. Unavailable backends report ErrNotFound
// rather than surfacing a hard failure to the read path.
func (f *Facade) GetPostByID(ctx context.Context, id string) (*service.Post, error) {
	if !f.available(ctx) {
		return nil, ErrNotFound
	}

	post, err := f.backend.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("get post %q failed: %v", id, err)
		return nil, ErrNotFound
	}
	return post, nil
}

// GetPostBySlug resolves a post by its slug. Backends without a slug
// index are served by scanning the listing.
func (f *Facade) GetPostBySlug(ctx context.Context, slug string) (*service.Post, error) {
	if !f.available(ctx) {
		return nil, ErrNotFound
	}

	if f.backend.Capabilities().BySlug {
		post, err := f.backend.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			log.Printf("get post by slug %q failed: %v", slug, err)
			return nil, ErrNotFound
		}
		return post, nil
	}

	for _, post := range f.GetAllPosts(ctx) {
		if service.GenerateSlug(post.Title) == slug {
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// CreatePost validates the input and writes through the backend.
// Writes are refused outright when no backend is reachable; the facade
// never fabricates an unpersisted post.
func (f *Facade) CreatePost(ctx context.Context, input service.CreateInput) (*service.Post, error) {
	normalized, err := validateInput(input)
	if err != nil {
		return nil, err
	}
	if !f.available(ctx) {
		return nil, fmt.Errorf("%w: backend not configured", ErrUnavailable)
	}

	post, err := f.backend.Create(ctx, normalized)
	if err != nil {
		return nil, f.normalize("create post", err)
	}
	return post, nil
}

// UpdatePost replaces the mutable fields of an existing post. Only
// backends with update capability support it.
func (f *Facade) UpdatePost(ctx context.Context, id string, input service.CreateInput) (*service.Post, error) {
	normalized, err := validateInput(input)
	if err != nil {
		return nil, err
	}
	if !f.available(ctx) {
		return nil, fmt.Errorf("%w: backend not configured", ErrUnavailable)
	}
	if !f.backend.Capabilities().Update {
		return nil, fmt.Errorf("%w: update", ErrNotSupported)
	}

	post, err := f.backend.Update(ctx, id, normalized)
	if err != nil {
		return nil, f.normalize("update post", err)
	}
	return post, nil
}

// DeletePost removes a post by id.
func (f *Facade) DeletePost(ctx context.Context, id string) error {
	if !f.available(ctx) {
		return fmt.Errorf("%w: backend not configured", ErrUnavailable)
	}

	if err := f.backend.Delete(ctx, id); err != nil {
		return f.normalize("delete post", err)
	}
	return nil
}

// normalize keeps sentinel errors intact and collapses everything else
// into ErrInternal with a clean message; the raw cause is only logged.
func (f *Facade) normalize(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnavailable) || errors.Is(err, ErrNotSupported) {
		return err
	}
	log.Printf("%s failed: %v", op, err)
	return fmt.Errorf("%w: could not %s", ErrInternal, op)
}

// validateInput applies the client-side form rules before any network
// traffic: title ≥3 chars, content ≥10 chars, author required, at most
// five deduplicated tags.
func validateInput(input service.CreateInput) (service.CreateInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.Author = strings.TrimSpace(input.Author)

	if len([]rune(input.Title)) < 3 {
		return input, fmt.Errorf("%w: title must be at least 3 characters", ErrValidation)
	}
	if len([]rune(input.Content)) < 10 {
		return input, fmt.Errorf("%w: content must be at least 10 characters", ErrValidation)
	}
	if input.Author == "" {
		return input, fmt.Errorf("%w: author is required", ErrValidation)
	}

	input.Tags = normalizeTags(input.Tags)
	if len(input.Tags) > maxTags {
		return input, fmt.Errorf("%w: a post can have at most %d tags", ErrValidation, maxTags)
	}
	return input, nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
