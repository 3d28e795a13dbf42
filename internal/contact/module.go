// Package contact provides the landing contact form bounded context.
package contact

import (
	"emsinet_landing_backend/internal/contact/handler"
	"emsinet_landing_backend/internal/contact/service"
	"emsinet_landing_backend/internal/events"
	apphttp "emsinet_landing_backend/internal/http"
	"emsinet_landing_backend/platform/logger"
	"emsinet_landing_backend/platform/validator"
)

// Module is the contact bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the contact module.
func NewModule(bus events.Bus, coverage service.CoverageFunc, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(bus, coverage, log)
	h := handler.NewHandler(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contact"
}

// RegisterRoutes mounts the contact routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Landing.POST("/contacto", m.handler.Submit)
}

var _ apphttp.Module = (*Module)(nil)
