package cache

import (
	"context"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	if _, ok := s.Get(ctx, "ranking:global"); ok {
		t.Fatalf("expected miss on empty store")
	}

	s.Set(ctx, "ranking:global", []int{1, 2, 3})
	got, ok := s.Get(ctx, "ranking:global")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if values, _ := got.([]int); len(values) != 3 {
		t.Fatalf("unexpected cached value %v", got)
	}

	s.Delete(ctx, "ranking:global")
	if _, ok := s.Get(ctx, "ranking:global"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10 * time.Millisecond)

	s.Set(ctx, "ranking:global", "cached")
	if _, ok := s.Get(ctx, "ranking:global"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "ranking:global"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewStore(0)

	s.Set(ctx, "ranking:global", "cached")
	time.Sleep(5 * time.Millisecond)
	if _, ok := s.Get(ctx, "ranking:global"); !ok {
		t.Fatalf("expected entry to persist without ttl")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "ranking:global", 1)
	s.Set(ctx, "ranking:friends:1", 2)
	s.Set(ctx, "dashboard:1", 3)

	s.DeletePrefix(ctx, "ranking:")

	if _, ok := s.Get(ctx, "ranking:global"); ok {
		t.Fatalf("expected ranking:global dropped")
	}
	if _, ok := s.Get(ctx, "ranking:friends:1"); ok {
		t.Fatalf("expected ranking:friends:1 dropped")
	}
	if _, ok := s.Get(ctx, "dashboard:1"); !ok {
		t.Fatalf("expected unrelated key kept")
	}
}

func TestStore_EmptyKeyIsIgnored(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "", "cached")
	if _, ok := s.Get(ctx, ""); ok {
		t.Fatalf("expected empty key never stored")
	}
}
