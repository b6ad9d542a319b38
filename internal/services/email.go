package services

import (
	"context"
	"fmt"

	"eventboard/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	to       string
}

// NewNotificationService returns a NotificationService that emails the
// configured ops address using the given Mailer and template renderer.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, to string) domain.NotificationService {
	return &notificationService{mailer: mailer, renderer: renderer, to: to}
}

// EventCreated sends the "event_created" notification for the given event.
func (s *notificationService) EventCreated(ctx context.Context, event *domain.Event) error {
	return s.send("event_created", event)
}

// EventDeleted sends the "event_deleted" notification for the given event.
func (s *notificationService) EventDeleted(ctx context.Context, event *domain.Event) error {
	return s.send("event_deleted", event)
}

func (s *notificationService) send(template string, event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}
	data := &domain.EventNotificationData{
		EventID:   event.ID,
		EventName: event.Name,
	}
	if event.Category != nil {
		data.Category = *event.Category
	}
	if event.Organizer != nil {
		data.Organizer = *event.Organizer
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	if err := s.mailer.Send(s.to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send %s email: %w", template, err)
	}
	return nil
}
