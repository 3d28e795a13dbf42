package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"emsinet_landing_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl, logger.New("test")), mr
}

func TestStore_SetGetClear(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "portal"); err != nil || ok {
		t.Fatalf("expected no session initially, got ok=%v err=%v", ok, err)
	}

	want := Session{Token: "tok-1", Profile: json.RawMessage(`{"name":"Ana"}`)}
	if err := store.Set(ctx, "portal", want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := store.Get(ctx, "portal")
	if err != nil || !ok {
		t.Fatalf("expected session, got ok=%v err=%v", ok, err)
	}
	if got.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", got.Token)
	}
	if string(got.Profile) != `{"name":"Ana"}` {
		t.Fatalf("expected profile preserved, got %s", got.Profile)
	}

	if err := store.Clear(ctx, "portal"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "portal"); ok {
		t.Fatal("expected session gone after clear")
	}
}

func TestStore_ClearMissingIsNotAnError(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	if err := store.Clear(context.Background(), "nope"); err != nil {
		t.Fatalf("clearing a missing session: %v", err)
	}
}

func TestStore_EntriesExpire(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, "portal", Session{Token: "tok"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, _ := store.Get(ctx, "portal"); ok {
		t.Fatal("expected session expired")
	}
}

func TestStore_MemoryFallback(t *testing.T) {
	store := New(nil, 50*time.Millisecond, logger.New("test"))
	ctx := context.Background()

	if err := store.Set(ctx, "portal", Session{Token: "mem"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(ctx, "portal")
	if err != nil || !ok || got.Token != "mem" {
		t.Fatalf("expected in-memory session, got %+v ok=%v err=%v", got, ok, err)
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok, _ := store.Get(ctx, "portal"); ok {
		t.Fatal("expected in-memory session expired")
	}

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("memory store ping: %v", err)
	}
}

func TestTokenSource(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	source := NewTokenSource(store, "portal")

	token, err := source.Token(ctx)
	if err != nil {
		t.Fatalf("token without session: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	if err := store.Set(ctx, "portal", Session{Token: "bearer-x"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	token, err = source.Token(ctx)
	if err != nil || token != "bearer-x" {
		t.Fatalf("expected bearer-x, got %q err=%v", token, err)
	}
}
