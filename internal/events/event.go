// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"emsinet_landing_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Landing Domain Events
// =============================================================================

// ContactMessageReceived is published when a visitor submits the contact form.
type ContactMessageReceived struct {
	BaseEvent
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Location      string   `json:"location"`
	Message       string   `json:"message"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	OutOfCoverage bool     `json:"outOfCoverage"`
}

func (e ContactMessageReceived) EventName() string { return "landing.contact.received" }

// NewContactMessageReceived creates a ContactMessageReceived event.
func NewContactMessageReceived(name, email, phone, location, message string, lat, lon *float64, outOfCoverage bool) ContactMessageReceived {
	return ContactMessageReceived{
		BaseEvent:     NewBaseEvent(),
		Name:          name,
		Email:         email,
		Phone:         phone,
		Location:      location,
		Message:       message,
		Latitude:      lat,
		Longitude:     lon,
		OutOfCoverage: outOfCoverage,
	}
}
