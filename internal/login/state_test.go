package login_test

import (
	"errors"
	"testing"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/stretchr/testify/assert"
)

// apply folds events over an initial state.
func apply(s login.State, events ...login.Event) login.State {
	for _, ev := range events {
		s = login.Reduce(s, ev)
	}
	return s
}

func TestReduce_TouchGating(t *testing.T) {
	t.Run("no errors before a field is touched", func(t *testing.T) {
		s := apply(login.State{}, login.EmailChanged{Value: "bad"}, login.PasswordChanged{Value: "1"})
		assert.Empty(t, s.Errors.Email)
		assert.Empty(t, s.Errors.Password)
	})

	t.Run("blurring an empty email shows only the email error", func(t *testing.T) {
		s := apply(login.State{}, login.Blurred{Field: login.FieldEmail})
		assert.Equal(t, "Email is required", s.Errors.Email)
		assert.Empty(t, s.Errors.Password)
		assert.True(t, s.Touched.Email)
		assert.False(t, s.Touched.Password)
	})

	t.Run("touched field errors follow every keystroke", func(t *testing.T) {
		s := apply(login.State{}, login.Blurred{Field: login.FieldEmail}, login.EmailChanged{Value: "a@b"})
		assert.Equal(t, "Please enter a valid email address", s.Errors.Email)

		s = login.Reduce(s, login.EmailChanged{Value: "a@b.com"})
		assert.Empty(t, s.Errors.Email)
	})

	t.Run("touching twice equals touching once", func(t *testing.T) {
		once := apply(login.State{}, login.Blurred{Field: login.FieldPassword})
		twice := apply(login.State{}, login.Blurred{Field: login.FieldPassword}, login.Blurred{Field: login.FieldPassword})
		assert.Equal(t, once, twice)
	})

	t.Run("touch is never reset by edits", func(t *testing.T) {
		s := apply(login.State{},
			login.Blurred{Field: login.FieldPassword},
			login.PasswordChanged{Value: "abcdef"},
			login.PasswordChanged{Value: ""},
		)
		assert.True(t, s.Touched.Password)
		assert.Equal(t, "Password is required", s.Errors.Password)
	})
}

func TestReduce_Submit(t *testing.T) {
	t.Run("empty form is rejected with both errors", func(t *testing.T) {
		s := login.Reduce(login.State{}, login.SubmitRequested{})
		assert.False(t, s.Submitting)
		assert.Equal(t, login.PhaseIdle, s.Phase())
		assert.Equal(t, "Email is required", s.Errors.Email)
		assert.Equal(t, "Password is required", s.Errors.Password)
		assert.Empty(t, s.Errors.General)
		assert.True(t, s.Touched.Email)
		assert.True(t, s.Touched.Password)
	})

	t.Run("one invalid field is enough to reject", func(t *testing.T) {
		s := apply(login.State{}, login.EmailChanged{Value: "a@b.com"}, login.PasswordChanged{Value: "abc"}, login.SubmitRequested{})
		assert.False(t, s.Submitting)
		assert.Empty(t, s.Errors.Email)
		assert.Equal(t, "Password must be at least 6 characters", s.Errors.Password)
	})

	t.Run("valid form enters submitting then fails generically", func(t *testing.T) {
		s := apply(login.State{}, login.EmailChanged{Value: "a@b.com"}, login.PasswordChanged{Value: "abcdef"}, login.SubmitRequested{})
		assert.True(t, s.Submitting)
		assert.Equal(t, login.PhaseSubmitting, s.Phase())
		assert.Empty(t, s.Errors.General)

		s = login.Reduce(s, login.AuthResolved{Err: login.ErrAuthenticationFailed})
		assert.False(t, s.Submitting)
		assert.Equal(t, login.GenericFailureMessage, s.Errors.General)
		assert.Empty(t, s.Errors.Email)
		assert.Empty(t, s.Errors.Password)
		assert.False(t, s.Authenticated)
	})

	t.Run("any provider error maps to the generic message", func(t *testing.T) {
		s := apply(login.State{Email: "a@b.com", Password: "abcdef"}, login.SubmitRequested{}, login.AuthResolved{Err: errors.New("boom")})
		assert.Equal(t, login.GenericFailureMessage, s.Errors.General)
	})

	t.Run("accepted credentials mark the form authenticated", func(t *testing.T) {
		s := apply(login.State{Email: "a@b.com", Password: "abcdef"}, login.SubmitRequested{}, login.AuthResolved{})
		assert.True(t, s.Authenticated)
		assert.False(t, s.Submitting)
		assert.Empty(t, s.Errors.General)
	})

	t.Run("resubmitting clears the previous banner", func(t *testing.T) {
		s := apply(login.State{Email: "a@b.com", Password: "abcdef"}, login.SubmitRequested{}, login.AuthResolved{Err: login.ErrAuthenticationFailed})
		s = login.Reduce(s, login.SubmitRequested{})
		assert.True(t, s.Submitting)
		assert.Empty(t, s.Errors.General, "general error must not coexist with submitting")
	})

	t.Run("banner survives edits until the next submit", func(t *testing.T) {
		s := apply(login.State{Email: "a@b.com", Password: "abcdef"}, login.SubmitRequested{}, login.AuthResolved{Err: login.ErrAuthenticationFailed})
		s = login.Reduce(s, login.EmailChanged{Value: "c@d.com"})
		assert.Equal(t, login.GenericFailureMessage, s.Errors.General)
	})

	t.Run("submit while submitting is ignored", func(t *testing.T) {
		s := apply(login.State{Email: "a@b.com", Password: "abcdef"}, login.SubmitRequested{})
		again := login.Reduce(s, login.SubmitRequested{})
		assert.Equal(t, s, again)
	})

	t.Run("stale resolution is ignored", func(t *testing.T) {
		s := login.State{Email: "a@b.com"}
		assert.Equal(t, s, login.Reduce(s, login.AuthResolved{Err: login.ErrAuthenticationFailed}))
	})
}

func TestReduce_PasswordVisibility(t *testing.T) {
	s := apply(login.State{}, login.PasswordChanged{Value: "secret1"})

	toggled := login.Reduce(s, login.PasswordVisibilityToggled{})
	assert.True(t, toggled.ShowPassword)
	assert.Equal(t, "secret1", toggled.Password)

	back := login.Reduce(toggled, login.PasswordVisibilityToggled{})
	assert.False(t, back.ShowPassword)
	assert.Equal(t, "secret1", back.Password)
}

func TestReduce_RememberMeIsNotACredential(t *testing.T) {
	s := apply(login.State{}, login.EmailChanged{Value: "a@b.com"}, login.RememberMeChanged{Value: true})
	assert.True(t, s.RememberMe)
	assert.Equal(t, login.Credentials{Email: "a@b.com"}, s.Credentials())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", login.PhaseIdle.String())
	assert.Equal(t, "validating", login.PhaseValidating.String())
	assert.Equal(t, "submitting", login.PhaseSubmitting.String())
}

func TestRestore(t *testing.T) {
	s := login.Restore(login.State{
		Email:         "not-an-email",
		Password:      "",
		Touched:       login.Touched{Email: true},
		Errors:        login.Errors{General: "stale"},
		Submitting:    true,
		Authenticated: true,
	})

	assert.Equal(t, "Please enter a valid email address", s.Errors.Email)
	assert.Empty(t, s.Errors.Password, "untouched password stays quiet")
	assert.Empty(t, s.Errors.General)
	assert.False(t, s.Submitting)
	assert.False(t, s.Authenticated)
}

func TestTouchedMerge(t *testing.T) {
	held := login.Touched{Password: true}

	merged := held.Merge(login.Touched{Email: true})
	assert.Equal(t, login.Touched{Email: true, Password: true}, merged)

	assert.Equal(t, held, held.Merge(login.Touched{}), "an older snapshot never clears a flag")
}
