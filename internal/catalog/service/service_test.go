package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"emsinet_landing_backend/platform/apperr"
	"emsinet_landing_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type fakeFetcher struct {
	plans       []Record
	accounts    []Record
	err         error
	planCalls   int64
	accountCall int64
}

func (f *fakeFetcher) ServicePlans(ctx context.Context) ([]Record, error) {
	atomic.AddInt64(&f.planCalls, 1)
	return f.plans, f.err
}

func (f *fakeFetcher) PaymentAccounts(ctx context.Context) ([]Record, error) {
	atomic.AddInt64(&f.accountCall, 1)
	return f.accounts, f.err
}

func newRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute, logger.New("test"))
}

func TestService_PaymentMethodsCached(t *testing.T) {
	fetcher := &fakeFetcher{
		accounts: []Record{{"bank": "Banpro", "tipo": "Cuenta Córdobas", "cuenta": "111"}},
	}
	svc := New(fetcher, newRedisCache(t), logger.New("test"))
	ctx := context.Background()

	first, err := svc.PaymentMethods(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Total != 1 || first.Items[0].Name != "Banpro" {
		t.Fatalf("unexpected response %+v", first)
	}

	second, err := svc.PaymentMethods(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Total != 1 {
		t.Fatalf("unexpected cached response %+v", second)
	}
	if calls := atomic.LoadInt64(&fetcher.accountCall); calls != 1 {
		t.Fatalf("expected single upstream fetch, got %d", calls)
	}
}

func TestService_NilCacheFetchesEveryTime(t *testing.T) {
	fetcher := &fakeFetcher{plans: []Record{{"categoria": "Internet", "nombre": "Plan", "precio": float64(920)}}}
	svc := New(fetcher, nil, logger.New("test"))
	ctx := context.Background()

	if _, err := svc.ServicePlans(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ServicePlans(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := atomic.LoadInt64(&fetcher.planCalls); calls != 2 {
		t.Fatalf("expected 2 upstream fetches without cache, got %d", calls)
	}
}

func TestService_UpstreamFailureIsUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	svc := New(fetcher, nil, logger.New("test"))

	_, err := svc.PaymentMethods(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable kind, got %v", apperr.GetKind(err))
	}
}

func TestService_InfoCombinesBothCollections(t *testing.T) {
	fetcher := &fakeFetcher{
		plans:    []Record{{"categoria": "Internet", "nombre": "Plan Hogar", "precio": float64(920)}},
		accounts: []Record{{"bank": "Banpro", "tipo": "Cuenta Córdobas", "cuenta": "111"}},
	}
	svc := New(fetcher, nil, logger.New("test"))

	info, err := svc.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info.Services) != 1 || info.Services[0].Name != "Internet" {
		t.Fatalf("unexpected services %+v", info.Services)
	}
	if len(info.PaymentMethods) != 1 || info.PaymentMethods[0].Name != "Banpro" {
		t.Fatalf("unexpected payment methods %+v", info.PaymentMethods)
	}
}

func TestRedisCache_MissAndRoundTrip(t *testing.T) {
	cache := newRedisCache(t)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatal("expected miss")
	}

	cache.Set(ctx, "k", []byte(`{"total":0}`))
	raw, ok := cache.Get(ctx, "k")
	if !ok || string(raw) != `{"total":0}` {
		t.Fatalf("expected round trip, got ok=%v raw=%s", ok, raw)
	}
}
