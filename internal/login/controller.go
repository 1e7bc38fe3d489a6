package login

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Controller owns one login form and drives it through Reduce. It is safe for
// concurrent use; events are applied one at a time.
type Controller struct {
	mu     sync.Mutex
	state  State
	auth   Authenticator
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithState seeds the controller with an existing form state, e.g. one rebuilt
// from a posted form.
func WithState(s State) Option {
	return func(c *Controller) { c.state = s }
}

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller for a fresh form.
func NewController(auth Authenticator, opts ...Option) *Controller {
	c := &Controller{auth: auth, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies ev and returns the resulting state. SubmitRequested and
// AuthResolved belong to Submit; dispatching them here only changes state and
// never calls the authenticator.
func (c *Controller) Dispatch(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ev)
	return c.state
}

// Submit runs one attempt to completion. It returns ErrSubmitInProgress if an
// attempt is already running, ErrInvalidFields if validation rejected the
// form, the authenticator's error if it refused, or nil on success.
//
// Once the attempt reaches the authenticator it is not cancelled by ctx; the
// outcome is always recorded.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.state.Submitting {
		s := c.state
		c.mu.Unlock()
		return s, ErrSubmitInProgress
	}
	c.logger.Debug("Login form transition", "phase", PhaseValidating)
	c.state = Reduce(c.state, SubmitRequested{})
	s := c.state
	c.mu.Unlock()

	if !s.Submitting {
		c.logger.Debug("Login form transition", "phase", PhaseIdle, "rejected", true)
		return s, ErrInvalidFields
	}
	c.logger.Debug("Login form transition", "phase", PhaseSubmitting)

	err := c.auth.Attempt(context.WithoutCancel(ctx), s.Credentials())

	c.mu.Lock()
	c.state = Reduce(c.state, AuthResolved{Err: err})
	s = c.state
	c.mu.Unlock()
	c.logger.Debug("Login form transition", "phase", PhaseIdle, "authenticated", s.Authenticated)

	if err != nil {
		return s, fmt.Errorf("login attempt: %w", err)
	}
	return s, nil
}
