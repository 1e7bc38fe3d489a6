package login_test

import (
	"context"
	"testing"
	"time"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/stretchr/testify/assert"
)

func TestSimulatedAuthenticator(t *testing.T) {
	t.Run("always rejects after the delay", func(t *testing.T) {
		auth := login.NewSimulatedAuthenticator(20 * time.Millisecond)

		start := time.Now()
		err := auth.Attempt(context.Background(), login.Credentials{Email: "a@b.com", Password: "correct-horse"})

		assert.ErrorIs(t, err, login.ErrAuthenticationFailed)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("stops waiting when the context ends", func(t *testing.T) {
		auth := login.NewSimulatedAuthenticator(time.Hour)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := auth.Attempt(ctx, login.Credentials{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("non-positive delay uses the default", func(t *testing.T) {
		assert.Equal(t, login.DefaultAuthDelay, login.NewSimulatedAuthenticator(0).Delay)
		assert.Equal(t, 1500*time.Millisecond, login.DefaultAuthDelay)
	})
}

func TestInFlight(t *testing.T) {
	f := login.NewInFlight()

	assert.True(t, f.Acquire("form-1"))
	assert.False(t, f.Acquire("form-1"))
	assert.True(t, f.Acquire("form-2"))
	assert.Equal(t, 2, f.Len())

	f.Release("form-1")
	assert.True(t, f.Acquire("form-1"))

	f.Release("form-1")
	f.Release("form-2")
	assert.Equal(t, 0, f.Len())
}
