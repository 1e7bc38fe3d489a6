// Package audit records login attempt outcomes on the in-process event bus and
// writes them to the structured log. Passwords and full addresses never leave
// the login package; only the email domain is recorded.
package audit

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/pubsub"
	"github.com/google/uuid"
)

// Outcome values carried by LoginAttempt.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// LoginAttempt is published once per attempt that reached an authenticator.
type LoginAttempt struct {
	AttemptID   string    `json:"attempt_id"`
	EmailDomain string    `json:"email_domain"`
	Outcome     string    `json:"outcome"`
	DurationMS  int64     `json:"duration_ms"`
	At          time.Time `json:"at"`
}

// LoginAttempts is the topic login outcomes are published on.
var LoginAttempts = pubsub.NewEvent[LoginAttempt]("auth.login.attempts")

// Authenticator decorates a login.Authenticator and publishes the outcome of
// every attempt. Publishing failures are logged and never change the result.
type Authenticator struct {
	next login.Authenticator
	pub  pubsub.Publisher
	now  func() time.Time
}

// NewAuthenticator wraps next.
func NewAuthenticator(next login.Authenticator, pub pubsub.Publisher) *Authenticator {
	return &Authenticator{next: next, pub: pub, now: time.Now}
}

// Attempt implements login.Authenticator.
func (a *Authenticator) Attempt(ctx context.Context, creds login.Credentials) error {
	start := a.now()
	err := a.next.Attempt(ctx, creds)

	event := LoginAttempt{
		AttemptID:   uuid.NewString(),
		EmailDomain: emailDomain(creds.Email),
		Outcome:     outcome(err),
		DurationMS:  a.now().Sub(start).Milliseconds(),
		At:          start.UTC(),
	}
	if perr := LoginAttempts.Publish(ctx, a.pub, event); perr != nil {
		slog.Error("Failed to publish login attempt", "attempt_id", event.AttemptID, "error", perr)
	}
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, login.ErrAuthenticationFailed):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

func emailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(email[i+1:])
}

// Subscribe logs every published login attempt with logger.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return LoginAttempts.Subscribe(ctx, sub, func(ctx context.Context, a LoginAttempt) error {
		level := slog.LevelInfo
		if a.Outcome != OutcomeAccepted {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "Login attempt",
			"attempt_id", a.AttemptID,
			"email_domain", a.EmailDomain,
			"outcome", a.Outcome,
			"duration_ms", a.DurationMS,
		)
		return nil
	})
}
