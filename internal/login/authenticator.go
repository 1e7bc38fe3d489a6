package login

import (
	"context"
	"time"
)

// DefaultAuthDelay is how long the simulated provider pretends to talk to a
// server.
const DefaultAuthDelay = 1500 * time.Millisecond

// Credentials is what a login attempt sends to an Authenticator.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator performs one login attempt. A nil error means the credentials
// were accepted.
type Authenticator interface {
	Attempt(ctx context.Context, creds Credentials) error
}

// AuthenticatorFunc adapts an ordinary function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, creds Credentials) error

// Attempt calls f(ctx, creds).
func (f AuthenticatorFunc) Attempt(ctx context.Context, creds Credentials) error {
	return f(ctx, creds)
}

// SimulatedAuthenticator stands in for a real backend. It waits for Delay and
// then rejects every attempt.
type SimulatedAuthenticator struct {
	Delay time.Duration
}

// NewSimulatedAuthenticator creates a SimulatedAuthenticator. A non-positive
// delay falls back to DefaultAuthDelay.
func NewSimulatedAuthenticator(delay time.Duration) *SimulatedAuthenticator {
	if delay <= 0 {
		delay = DefaultAuthDelay
	}
	return &SimulatedAuthenticator{Delay: delay}
}

// Attempt implements Authenticator. It returns ctx.Err() if ctx ends first and
// ErrAuthenticationFailed otherwise.
func (a *SimulatedAuthenticator) Attempt(ctx context.Context, _ Credentials) error {
	timer := time.NewTimer(a.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return ErrAuthenticationFailed
	case <-ctx.Done():
		return ctx.Err()
	}
}
