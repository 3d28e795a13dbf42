// Package service provides the catalog aggregation business logic.
package service

import (
	"context"
	"encoding/json"

	"emsinet_landing_backend/internal/catalog/transport"
	"emsinet_landing_backend/platform/apperr"
	"emsinet_landing_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Cache keys for the aggregated payloads.
const (
	cacheKeyPayments = "landing:metodos-pago"
	cacheKeyServices = "landing:servicios"
)

// Fetcher reads the raw record collections from the upstream backend.
type Fetcher interface {
	ServicePlans(ctx context.Context) ([]Record, error)
	PaymentAccounts(ctx context.Context) ([]Record, error)
}

// Cache stores aggregated payloads for a short TTL. Implementations must be
// best-effort: a miss and a failure look the same to the service.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Service aggregates upstream catalog records for the landing page.
type Service struct {
	fetcher Fetcher
	cache   Cache
	log     *logger.Logger
}

// New creates the catalog service. cache may be nil.
func New(fetcher Fetcher, cache Cache, log *logger.Logger) *Service {
	return &Service{fetcher: fetcher, cache: cache, log: log}
}

// PaymentMethods returns payment accounts grouped per bank.
func (s *Service) PaymentMethods(ctx context.Context) (transport.ListResponse, error) {
	return s.collection(ctx, cacheKeyPayments, s.fetcher.PaymentAccounts, PaymentsProfile)
}

// ServicePlans returns service plans grouped per category.
func (s *Service) ServicePlans(ctx context.Context) (transport.ListResponse, error) {
	return s.collection(ctx, cacheKeyServices, s.fetcher.ServicePlans, ServicesProfile)
}

// Info returns both collections, fetched concurrently.
func (s *Service) Info(ctx context.Context) (transport.InfoResponse, error) {
	var info transport.InfoResponse

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		services, err := s.ServicePlans(groupCtx)
		if err != nil {
			return err
		}
		info.Services = services.Items
		return nil
	})
	group.Go(func() error {
		payments, err := s.PaymentMethods(groupCtx)
		if err != nil {
			return err
		}
		info.PaymentMethods = payments.Items
		return nil
	})

	if err := group.Wait(); err != nil {
		return transport.InfoResponse{}, err
	}
	return info, nil
}

func (s *Service) collection(ctx context.Context, cacheKey string, fetch func(context.Context) ([]Record, error), profile Profile) (transport.ListResponse, error) {
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	records, err := fetch(ctx)
	if err != nil {
		s.log.UpstreamError("catalog", cacheKey, err)
		return transport.ListResponse{}, apperr.Wrap(apperr.KindUnavailable, "catalog backend unavailable", err)
	}

	entries := Aggregate(records, profile)
	response := transport.ListResponse{Items: entries, Total: len(entries)}
	s.toCache(ctx, cacheKey, response)
	return response, nil
}

func (s *Service) fromCache(ctx context.Context, key string) (transport.ListResponse, bool) {
	if s.cache == nil {
		return transport.ListResponse{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return transport.ListResponse{}, false
	}
	var response transport.ListResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		s.log.Warn("discarding malformed cache entry", "key", key, "error", err)
		return transport.ListResponse{}, false
	}
	return response, true
}

func (s *Service) toCache(ctx context.Context, key string, response transport.ListResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw)
}
