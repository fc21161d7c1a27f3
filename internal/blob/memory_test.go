package blob

import (
	"context"
	"errors"
	"sort"
	"testing"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, "a", []byte(`{"id":"a"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	doc, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(doc) != `{"id":"a"}` {
		t.Fatalf("unexpected document %q", doc)
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "a"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, key := range []string{"one", "two", "three"} {
		if err := store.Set(ctx, key, []byte("{}")); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	sort.Strings(keys)
	want := []string{"one", "three", "two"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "a", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}
	doc, _ := store.Get(ctx, "a")
	doc[0] = 'x'

	fresh, _ := store.Get(ctx, "a")
	if string(fresh) != "abc" {
		t.Fatalf("stored document was mutated through a returned slice: %q", fresh)
	}
}
