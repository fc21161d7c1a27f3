package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quickblog/internal/service"
)

// HTTPBackend talks to a remote post store service over its /posts
// surface. It supports list, get, create, and delete; update and slug
// lookup are not part of that wire contract.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend creates a backend for the given base URL. The timeout
// bounds every request; the availability probe is bounded further by
// the caller's context.
func NewHTTPBackend(baseURL string, timeout time.Duration) *HTTPBackend {
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (b *HTTPBackend) Capabilities() Capabilities {
	return Capabilities{}
}

// Ping issues a HEAD existence probe. Any HTTP answer below 500 counts
// as alive; only network failures and server faults mean unavailable.
func (b *HTTPBackend) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, b.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	return nil
}

func (b *HTTPBackend) List(ctx context.Context) ([]service.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/posts", nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, b.errorFrom(resp)
	}

	var posts []service.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode post list: %w", err)
	}
	return posts, nil
}

func (b *HTTPBackend) Get(ctx context.Context, id string) (*service.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/posts/"+id, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var post service.Post
		if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		return &post, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, b.errorFrom(resp)
	}
}

func (b *HTTPBackend) GetBySlug(ctx context.Context, slug string) (*service.Post, error) {
	return nil, fmt.Errorf("%w: get by slug", ErrNotSupported)
}

func (b *HTTPBackend) Create(ctx context.Context, input service.CreateInput) (*service.Post, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/posts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var post service.Post
		if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
			return nil, fmt.Errorf("decode created post: %w", err)
		}
		return &post, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrValidation, b.errorMessage(resp))
	default:
		return nil, b.errorFrom(resp)
	}
}

func (b *HTTPBackend) Update(ctx context.Context, id string, input service.CreateInput) (*service.Post, error) {
	return nil, fmt.Errorf("%w: update", ErrNotSupported)
}

func (b *HTTPBackend) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, b.baseURL+"/posts/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return b.errorFrom(resp)
	}
}

// errorMessage extracts the {"error": ...} envelope the post service
// wraps failures in, falling back to the HTTP status.
func (b *HTTPBackend) errorMessage(resp *http.Response) string {
	var envelope struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode)
}

func (b *HTTPBackend) errorFrom(resp *http.Response) error {
	return fmt.Errorf("post service: %s", b.errorMessage(resp))
}
