package port

import "context"

// EmailSender defines the contract for sending reminder emails.
type EmailSender interface {
	SendReminder(ctx context.Context, toEmail, toName, subject, body string) error
}
