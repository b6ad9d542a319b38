package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventNotificationData holds data for the event lifecycle notification emails.
type EventNotificationData struct {
	EventID   int64
	EventName string
	Category  string
	Organizer string
}

// NotificationService sends ops notifications for event mutations.
// Notifications are best-effort; senders must not fail the mutation on error.
type NotificationService interface {
	EventCreated(ctx context.Context, event *Event) error
	EventDeleted(ctx context.Context, event *Event) error
}
