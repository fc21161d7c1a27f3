package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/quickblog/internal/blob"
)

func setupPostService(t *testing.T) (*PostService, *blob.MemoryStore) {
	t.Helper()
	store := blob.NewMemoryStore()
	return NewPostService(store, "timestamp"), store
}

func mustCreate(t *testing.T, svc *PostService, input CreateInput) *Post {
	t.Helper()
	post, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func TestPostService_CreateGetRoundTrip(t *testing.T) {
	svc, _ := setupPostService(t)

	before := time.Now().UTC().Add(-time.Second)
	created := mustCreate(t, svc, CreateInput{
		Title:   "X",
		Content: "0123456789",
		Author:  "Bob",
	})

	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Fatalf("expected createdAt == updatedAt, got %q and %q", created.CreatedAt, created.UpdatedAt)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Fatalf("expected empty tags slice, got %#v", created.Tags)
	}

	stamp, err := time.Parse(TimeFormat, created.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt is not in the wire format: %v", err)
	}
	if stamp.Before(before) {
		t.Fatalf("createdAt %v is before the call time %v", stamp, before)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.Title != "X" || got.Content != "0123456789" || got.Author != "Bob" {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestPostService_ListNewestFirst(t *testing.T) {
	svc, _ := setupPostService(t)

	a := mustCreate(t, svc, CreateInput{Title: "A", Content: "first post body", Author: "Bob"})
	time.Sleep(5 * time.Millisecond)
	b := mustCreate(t, svc, CreateInput{Title: "B", Content: "second post body", Author: "Bob"})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != b.ID || posts[1].ID != a.ID {
		t.Fatalf("expected [B, A], got [%s, %s]", posts[0].Title, posts[1].Title)
	}
}

func TestPostService_ListTieBreakIsDeterministic(t *testing.T) {
	svc, store := setupPostService(t)

	// two documents sharing the same createdAt
	for _, id := range []string{"aaa", "zzz"} {
		doc, _ := json.Marshal(Post{
			ID:        id,
			Title:     "T " + id,
			Content:   "same timestamp",
			Author:    "Bob",
			Tags:      []string{},
			CreatedAt: "2024-01-01T10:00:00.000Z",
			UpdatedAt: "2024-01-01T10:00:00.000Z",
		})
		if err := store.Set(context.Background(), id, doc); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	for i := 0; i < 5; i++ {
		posts, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		if len(posts) != 2 || posts[0].ID != "zzz" || posts[1].ID != "aaa" {
			t.Fatalf("expected deterministic [zzz, aaa], got %#v", posts)
		}
	}
}

func TestPostService_ListSkipsBadRecords(t *testing.T) {
	svc, store := setupPostService(t)

	good := mustCreate(t, svc, CreateInput{Title: "Good", Content: "readable body", Author: "Bob"})
	if err := store.Set(context.Background(), "broken", []byte("{not json")); err != nil {
		t.Fatalf("seed broken record: %v", err)
	}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected list to survive a bad record, got %v", err)
	}
	if len(posts) != 1 || posts[0].ID != good.ID {
		t.Fatalf("expected only the good post, got %#v", posts)
	}
}

func TestPostService_CreateValidation(t *testing.T) {
	svc, store := setupPostService(t)

	cases := []CreateInput{
		{Content: "long enough body", Author: "Bob"},
		{Title: "Title", Author: "Bob"},
		{Title: "Title", Content: "long enough body"},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %#v, got %v", input, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("validation failures must not write, store has %d records", store.Len())
	}
}

func TestPostService_DeleteObservations(t *testing.T) {
	svc, _ := setupPostService(t)

	post := mustCreate(t, svc, CreateInput{Title: "Tmp", Content: "soon to be gone", Author: "Bob"})

	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("delete existing post: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "never-existed"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for unknown id, got %v", err)
	}
}

func TestPostService_UUIDStrategy(t *testing.T) {
	store := blob.NewMemoryStore()
	svc := NewPostService(store, "uuid")

	post, err := svc.Create(context.Background(), CreateInput{
		Title: "U", Content: "uuid id body", Author: "Bob",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if len(post.ID) != 36 {
		t.Fatalf("expected a canonical uuid, got %q", post.ID)
	}
}

func TestNewTimestampID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewTimestampID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}
