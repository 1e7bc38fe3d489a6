package login

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password the form accepts.
const MinPasswordLength = 6

// Field names a validated input of the login form.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// nonSpace matches one character that is not whitespace in the browser's
// sense. Go's \S only excludes ASCII whitespace, so the Unicode space
// separators, line separators and the BOM are listed explicitly.
const nonSpace = `[^\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// emailShape is loose: something, an @, something, a dot, something. It is
// not anchored, matching the browser-side check it replaces.
var emailShape = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// rule ties a validator tag to the error reported when it fails.
type rule struct {
	tag     string
	param   string
	err     error
	message string
}

func (r rule) expr() string {
	if r.param == "" {
		return r.tag
	}
	return r.tag + "=" + r.param
}

var (
	emailRules = []rule{
		{tag: "required", err: ErrFieldRequired, message: "Email is required"},
		{tag: "emailshape", err: ErrInvalidFormat, message: "Please enter a valid email address"},
	}
	passwordRules = []rule{
		{tag: "required", err: ErrFieldRequired, message: "Password is required"},
		{tag: "minlen16", param: strconv.Itoa(MinPasswordLength), err: ErrTooShort, message: "Password must be at least 6 characters"},
	}
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("login: register emailshape validation: %v", err))
	}
	err = v.RegisterValidation("minlen16", func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf16Len(fl.Field().String()) >= want
	})
	if err != nil {
		panic(fmt.Sprintf("login: register minlen16 validation: %v", err))
	}
	return v
}

// utf16Len is the length of s as a browser reports it: characters outside the
// Basic Multilingual Plane count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// ValidateEmail returns a *FieldError wrapping ErrFieldRequired or
// ErrInvalidFormat, or nil when the value is acceptable.
func ValidateEmail(value string) error {
	return validateField(FieldEmail, value, emailRules)
}

// ValidatePassword returns a *FieldError wrapping ErrFieldRequired or
// ErrTooShort, or nil when the value is acceptable.
func ValidatePassword(value string) error {
	return validateField(FieldPassword, value, passwordRules)
}

// Validate dispatches to the validator for field.
func Validate(field Field, value string) error {
	switch field {
	case FieldEmail:
		return ValidateEmail(value)
	case FieldPassword:
		return ValidatePassword(value)
	default:
		return fmt.Errorf("login: unknown field %q", field)
	}
}

func validateField(field Field, value string, rules []rule) error {
	exprs := make([]string, len(rules))
	for i, r := range rules {
		exprs[i] = r.expr()
	}

	err := validate.Var(value, strings.Join(exprs, ","))
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate %s: %w", field, err)
	}

	// Var stops at the first failing tag, so there is exactly one entry.
	failed := verrs[0].Tag()
	for _, r := range rules {
		if r.tag == failed {
			return &FieldError{Field: field, Err: r.err, Message: r.message}
		}
	}
	return fmt.Errorf("validate %s: unexpected rule %q", field, failed)
}

// message returns the display text of a validation error, or "" for nil.
func message(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
