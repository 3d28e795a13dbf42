// Package geocode provides the location lookup bounded context: forward
// search with local-name correction and reverse coordinate resolution.
package geocode

import (
	apphttp "emsinet_landing_backend/internal/http"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
)

// Module wires the geocoding HTTP routes.
type Module struct {
	handler  *Handler
	resolver *Resolver
}

func NewModule(cfg config.GeocodingConfig, log *logger.Logger) *Module {
	svc := NewResolver(cfg, log)
	h := NewHandler(svc)
	return &Module{handler: h, resolver: svc}
}

func (m *Module) Name() string {
	return "geocode"
}

// Resolver returns the resolver for external use (contact module, CLI).
func (m *Module) Resolver() *Resolver {
	return m.resolver
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/geocode")
	group.GET("/search", m.handler.Search)
	group.GET("/reverse", m.handler.Reverse)
}

var _ apphttp.Module = (*Module)(nil)
