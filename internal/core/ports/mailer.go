package ports

import "context"

// Email is a single outbound message.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers a single email synchronously.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// MailQueue accepts emails for asynchronous, best-effort delivery. Enqueue
// never blocks the request path; delivery failures are retried and finally
// logged, never surfaced to callers.
type MailQueue interface {
	Enqueue(email Email)
}
