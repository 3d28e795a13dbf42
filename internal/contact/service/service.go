// Package service handles landing contact form submissions: it normalizes
// the input, checks the service region, and publishes an event for the
// notification pipeline.
package service

import (
	"context"

	"emsinet_landing_backend/internal/contact/transport"
	internalevents "emsinet_landing_backend/internal/events"
	"emsinet_landing_backend/platform/apperr"
	"emsinet_landing_backend/platform/logger"
	"emsinet_landing_backend/platform/phone"
	"emsinet_landing_backend/platform/sanitize"
)

const (
	receivedMessage = "Gracias por contactarnos. Te responderemos lo antes posible."
	coverageWarning = "La ubicación indicada está fuera de nuestra zona de cobertura actual. Te contactaremos para confirmar disponibilidad."
)

// CoverageFunc reports whether a coordinate falls inside the service region.
type CoverageFunc func(lat, lon float64) bool

// Service processes contact submissions.
type Service struct {
	events   internalevents.Bus
	coverage CoverageFunc
	log      *logger.Logger
}

// New creates the contact service. coverage may be nil, in which case no
// coverage check is performed.
func New(events internalevents.Bus, coverage CoverageFunc, log *logger.Logger) *Service {
	return &Service{events: events, coverage: coverage, log: log}
}

// Submit validates and records a contact request. The submission is
// accepted even when the location is out of coverage; the response then
// carries a warning.
func (s *Service) Submit(ctx context.Context, req transport.ContactRequest) (*transport.ContactResponse, error) {
	name := sanitize.Text(req.Name)
	message := sanitize.Text(req.Message)
	location := sanitize.Text(req.Location)
	if name == "" || message == "" {
		return nil, apperr.Validation("name and message are required")
	}

	normalizedPhone := phone.NormalizeE164(req.Phone)

	outOfCoverage := false
	if s.coverage != nil && req.Latitude != nil && req.Longitude != nil {
		outOfCoverage = !s.coverage(*req.Latitude, *req.Longitude)
	}

	event := internalevents.NewContactMessageReceived(
		name,
		req.Email,
		normalizedPhone,
		location,
		message,
		req.Latitude,
		req.Longitude,
		outOfCoverage,
	)
	s.events.Publish(ctx, event)

	s.log.Info("contact request received",
		"email", req.Email,
		"out_of_coverage", outOfCoverage,
	)

	resp := &transport.ContactResponse{
		Success:       true,
		Message:       receivedMessage,
		OutOfCoverage: outOfCoverage,
	}
	if outOfCoverage {
		resp.Warning = coverageWarning
	}
	return resp, nil
}
