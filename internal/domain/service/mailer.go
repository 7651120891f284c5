package service

import (
	"context"
)

// Mailer dispatches notification email. Callers treat failures as
// best-effort: log and move on.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
