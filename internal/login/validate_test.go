package login_test

import (
	"strings"
	"testing"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Run("empty email is required", func(t *testing.T) {
		err := login.ValidateEmail("")
		require.Error(t, err)
		assert.ErrorIs(t, err, login.ErrFieldRequired)
		assert.Equal(t, "Email is required", err.Error())
	})

	t.Run("malformed emails are rejected", func(t *testing.T) {
		for _, v := range []string{"plainaddress", "a@b", "@b.com", "a@.com", "a b@c", "a@b.", " "} {
			err := login.ValidateEmail(v)
			require.Error(t, err, "expected %q to be rejected", v)
			assert.ErrorIs(t, err, login.ErrInvalidFormat, "value %q", v)
			assert.Equal(t, "Please enter a valid email address", err.Error())
		}
	})

	t.Run("well formed emails pass", func(t *testing.T) {
		for _, v := range []string{"a@b.com", "donor@hospital.org", "x.y+z@sub.domain.co", "a@b.c.d"} {
			assert.NoError(t, login.ValidateEmail(v), "expected %q to pass", v)
		}
	})

	t.Run("match is not anchored and input is not trimmed", func(t *testing.T) {
		assert.NoError(t, login.ValidateEmail("  a@b.com  "))
		assert.NoError(t, login.ValidateEmail("hello a@b.com world"))
	})

	t.Run("unicode spaces break the shape like ascii ones", func(t *testing.T) {
		for _, v := range []string{"a\u00a0@b.com", "a@b\u2003.com", "a@b.\u3000", "a@\ufeff.com"} {
			assert.ErrorIs(t, login.ValidateEmail(v), login.ErrInvalidFormat, "value %q", v)
		}
		assert.NoError(t, login.ValidateEmail("dönör@hospital.eg"))
	})

	t.Run("error carries the field", func(t *testing.T) {
		var fe *login.FieldError
		require.ErrorAs(t, login.ValidateEmail(""), &fe)
		assert.Equal(t, login.FieldEmail, fe.Field)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Run("empty password is required", func(t *testing.T) {
		err := login.ValidatePassword("")
		assert.ErrorIs(t, err, login.ErrFieldRequired)
		assert.Equal(t, "Password is required", err.Error())
	})

	t.Run("passwords shorter than the minimum are rejected", func(t *testing.T) {
		for n := 1; n < login.MinPasswordLength; n++ {
			err := login.ValidatePassword(strings.Repeat("x", n))
			assert.ErrorIs(t, err, login.ErrTooShort, "length %d", n)
			assert.Equal(t, "Password must be at least 6 characters", err.Error())
		}
	})

	t.Run("passwords at or above the minimum pass", func(t *testing.T) {
		for _, n := range []int{6, 7, 64} {
			assert.NoError(t, login.ValidatePassword(strings.Repeat("x", n)), "length %d", n)
		}
	})

	t.Run("length is counted in utf-16 units", func(t *testing.T) {
		// Each emoji is a surrogate pair.
		assert.NoError(t, login.ValidatePassword("😀😀😀"))
		assert.ErrorIs(t, login.ValidatePassword("😀😀"), login.ErrTooShort)
		assert.ErrorIs(t, login.ValidatePassword("ééééé"), login.ErrTooShort)
		assert.NoError(t, login.ValidatePassword("éééééé"))
	})

	t.Run("validators are pure", func(t *testing.T) {
		first := login.ValidatePassword("abc")
		second := login.ValidatePassword("abc")
		assert.Equal(t, first.Error(), second.Error())
	})
}

func TestValidateDispatch(t *testing.T) {
	assert.ErrorIs(t, login.Validate(login.FieldEmail, ""), login.ErrFieldRequired)
	assert.ErrorIs(t, login.Validate(login.FieldPassword, "abc"), login.ErrTooShort)
	assert.Error(t, login.Validate(login.Field("username"), "x"))
}
