// Package catalog provides the landing catalog bounded context: payment
// methods and service plans fetched from the upstream backend, grouped and
// ordered for presentation.
package catalog

import (
	"emsinet_landing_backend/internal/catalog/client"
	"emsinet_landing_backend/internal/catalog/handler"
	"emsinet_landing_backend/internal/catalog/service"
	apphttp "emsinet_landing_backend/internal/http"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
	"emsinet_landing_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the catalog module with all its
// dependencies. redisClient and tokens may be nil; caching and
// authenticated upstream calls are then disabled.
func NewModule(cfg config.CatalogConfig, tokens client.TokenReader, redisClient *redis.Client, val *validator.Validator, log *logger.Logger) *Module {
	fetcher := client.New(cfg, tokens, log)

	var cache service.Cache
	if redisClient != nil {
		cache = service.NewRedisCache(redisClient, cfg.GetCatalogCacheTTL(), log)
	}

	svc := service.New(fetcher, cache, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the landing catalog routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Landing.GET("/servicios", m.handler.ServicePlans)
	ctx.Landing.GET("/metodos-pago", m.handler.PaymentMethods)
	ctx.Landing.GET("/metodos-pago/qr", m.handler.AccountQR)
	ctx.Landing.GET("/info", m.handler.Info)
}

var _ apphttp.Module = (*Module)(nil)
