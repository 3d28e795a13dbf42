// Package notification provides event handlers for sending notifications
// in response to domain events. Domain modules publish events and stay
// unaware of email providers or templates.
package notification

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"emsinet_landing_backend/internal/events"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
)

const contactSubject = "Nueva solicitud de contacto - EMS InetSolut"

var contactTemplate = template.Must(template.New("contact").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a1a;">
  <h2>Nueva solicitud de contacto</h2>
  <table cellpadding="4">
    <tr><td><b>Nombre</b></td><td>{{.Name}}</td></tr>
    <tr><td><b>Correo</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Teléfono</b></td><td>{{.Phone}}</td></tr>
    {{if .Location}}<tr><td><b>Ubicación</b></td><td>{{.Location}}</td></tr>{{end}}
    {{if .Coordinates}}<tr><td><b>Coordenadas</b></td><td>{{.Coordinates}}</td></tr>{{end}}
  </table>
  {{if .OutOfCoverage}}<p><b>Atención:</b> ubicación fuera de la zona de cobertura.</p>{{end}}
  <p>{{.Message}}</p>
</body>
</html>`))

type contactEmailData struct {
	Name          string
	Email         string
	Phone         string
	Location      string
	Coordinates   string
	Message       string
	OutOfCoverage bool
}

// EmailSender delivers a rendered notification email.
type EmailSender interface {
	Send(ctx context.Context, toEmail, subject, htmlContent string) error
}

// Module subscribes to landing domain events and sends email notifications.
// Delivery failures are logged and never propagated to the publisher.
type Module struct {
	sender EmailSender
	inbox  string
	log    *logger.Logger
}

// NewModule creates the notification module. Returns nil when email
// delivery is disabled; a nil module registers nothing.
func NewModule(cfg config.EmailConfig, log *logger.Logger) *Module {
	if !cfg.GetEmailEnabled() {
		log.Info("email notifications disabled")
		return nil
	}

	sender := NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)

	return &Module{
		sender: sender,
		inbox:  cfg.GetContactInboxAddress(),
		log:    log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	if m == nil {
		return
	}
	bus.Subscribe(events.ContactMessageReceived{}.EventName(), m)
	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ContactMessageReceived:
		return m.handleContactMessageReceived(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleContactMessageReceived(ctx context.Context, e events.ContactMessageReceived) error {
	data := contactEmailData{
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Location:      e.Location,
		Message:       e.Message,
		OutOfCoverage: e.OutOfCoverage,
	}
	if e.Latitude != nil && e.Longitude != nil {
		data.Coordinates = fmt.Sprintf("%s, %s",
			strconv.FormatFloat(*e.Latitude, 'f', -1, 64),
			strconv.FormatFloat(*e.Longitude, 'f', -1, 64),
		)
	}

	var body strings.Builder
	if err := contactTemplate.Execute(&body, data); err != nil {
		m.log.Error("render contact notification", "error", err)
		return nil
	}

	if err := m.sender.Send(ctx, m.inbox, contactSubject, body.String()); err != nil {
		m.log.Error("send contact notification", "error", err, "to", m.inbox)
		return nil
	}

	m.log.Info("contact notification sent", "to", m.inbox)
	return nil
}
