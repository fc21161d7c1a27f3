package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quickblog/internal/blob"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrValidation   = errors.New("validation failed")
)

// TimeFormat mirrors the JavaScript Date.toISOString layout. The fixed
// millisecond width keeps lexicographic order equal to chronological
// order, which List relies on.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Post is the wire entity, stored as one JSON document per id.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// CreateInput represents fields accepted when creating a post.
type CreateInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// PostService exposes post CRUD over a key-value blob store. It holds
// no mutable state between calls.
type PostService struct {
	store blob.Store
	newID func() string
	now   func() time.Time
}

// NewPostService creates a PostService. idStrategy selects "uuid" ids;
// any other value keeps the default timestamp+random scheme.
func NewPostService(store blob.Store, idStrategy string) *PostService {
	svc := &PostService{
		store: store,
		newID: NewTimestampID,
		now:   time.Now,
	}
	if idStrategy == "uuid" {
		svc.newID = uuid.NewString
	}
	return svc
}

// NewTimestampID concatenates a base36 millisecond timestamp with a
// base36 random suffix. Collision-unlikely rather than collision-proof,
// which is acceptable at this scale; the uuid strategy covers the rest.
func NewTimestampID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	return ts + suffix
}

// List fetches every stored post and returns them newest-first.
// Unreadable or unparseable records are skipped and logged so a single
// bad document never fails the whole listing.
func (s *PostService) List(ctx context.Context) ([]Post, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list post keys: %w", err)
	}

	posts := make([]Post, 0, len(keys))
	for _, key := range keys {
		doc, err := s.store.Get(ctx, key)
		if err != nil {
			// a concurrent delete between List and Get is benign
			if errors.Is(err, blob.ErrKeyNotFound) {
				continue
			}
			log.Printf("skipping unreadable post %q: %v", key, err)
			continue
		}

		var post Post
		if err := json.Unmarshal(doc, &post); err != nil {
			log.Printf("skipping unparseable post %q: %v", key, err)
			continue
		}
		if post.Tags == nil {
			post.Tags = []string{}
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt != posts[j].CreatedAt {
			return posts[i].CreatedAt > posts[j].CreatedAt
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

// Get fetches a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*Post, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, blob.ErrKeyNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %q: %w", id, err)
	}

	var post Post
	if err := json.Unmarshal(doc, &post); err != nil {
		return nil, fmt.Errorf("decode post %q: %w", id, err)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return &post, nil
}

// Create validates the input, assigns an id and timestamps, and writes
// the document. Nothing is written when validation fails.
func (s *PostService) Create(ctx context.Context, input CreateInput) (*Post, error) {
	if input.Title == "" || input.Content == "" || input.Author == "" {
		return nil, fmt.Errorf("%w: title, content, and author are required", ErrValidation)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := s.now().UTC().Format(TimeFormat)
	post := Post{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("encode post: %w", err)
	}
	if err := s.store.Set(ctx, post.ID, doc); err != nil {
		return nil, fmt.Errorf("store post %q: %w", post.ID, err)
	}
	return &post, nil
}

// Delete removes a post by id. Absent ids report ErrPostNotFound, never
// silent success.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, blob.ErrKeyNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("check post %q: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %q: %w", id, err)
	}
	return nil
}
