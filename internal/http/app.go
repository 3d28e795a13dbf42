// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"emsinet_landing_backend/internal/events"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks (e.g., Redis ping); may be nil.
	Health HealthChecker
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// RateLimitRPS and RateLimitBurst configure the per-IP limiter.
	RateLimitRPS   float64
	RateLimitBurst int
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
