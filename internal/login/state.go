package login

// Phase is the position of the form in the submission lifecycle.
// Validating only exists while a SubmitRequested event is being reduced; a
// reduced State is always Idle or Submitting.
type Phase int

const (
	// PhaseIdle accepts field events and submits.
	PhaseIdle Phase = iota
	// PhaseValidating checks every field before an attempt starts.
	PhaseValidating
	// PhaseSubmitting waits for the authenticator; further submits are ignored.
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Touched records which fields the user has left at least once.
type Touched struct {
	Email    bool
	Password bool
}

// Mark sets the flag for field. Marking an already touched field is a no-op.
func (t Touched) Mark(field Field) Touched {
	switch field {
	case FieldEmail:
		t.Email = true
	case FieldPassword:
		t.Password = true
	}
	return t
}

// Merge returns the union of t and o. Touch flags only ever turn on, so a
// merge never clears a flag either side holds.
func (t Touched) Merge(o Touched) Touched {
	return Touched{Email: t.Email || o.Email, Password: t.Password || o.Password}
}

// Has reports whether field has been touched.
func (t Touched) Has(field Field) bool {
	switch field {
	case FieldEmail:
		return t.Email
	case FieldPassword:
		return t.Password
	}
	return false
}

// Errors holds the messages currently displayed. Empty means no error.
type Errors struct {
	Email    string
	Password string
	General  string
}

// Any reports whether a field error is present.
func (e Errors) Any() bool {
	return e.Email != "" || e.Password != ""
}

// State is a snapshot of the login form. It is a value: every transition
// produces a new State through Reduce.
type State struct {
	Email        string
	Password     string
	RememberMe   bool
	ShowPassword bool

	Touched Touched
	Errors  Errors

	Submitting    bool
	Authenticated bool
}

// Phase derives the lifecycle phase from the state.
func (s State) Phase() Phase {
	if s.Submitting {
		return PhaseSubmitting
	}
	return PhaseIdle
}

// Credentials returns what is sent to the authenticator. RememberMe stays in
// the browser.
func (s State) Credentials() Credentials {
	return Credentials{Email: s.Email, Password: s.Password}
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

type (
	// EmailChanged carries the new raw value of the email input.
	EmailChanged struct{ Value string }

	// PasswordChanged carries the new raw value of the password input.
	PasswordChanged struct{ Value string }

	// RememberMeChanged carries the checkbox state.
	RememberMeChanged struct{ Value bool }

	// Blurred is emitted when focus leaves a field.
	Blurred struct{ Field Field }

	// PasswordVisibilityToggled flips password masking.
	PasswordVisibilityToggled struct{}

	// SubmitRequested starts a submit attempt.
	SubmitRequested struct{}

	// AuthResolved is the authenticator's answer for the in-flight attempt.
	AuthResolved struct{ Err error }
)

func (EmailChanged) isEvent()              {}
func (PasswordChanged) isEvent()           {}
func (RememberMeChanged) isEvent()         {}
func (Blurred) isEvent()                   {}
func (PasswordVisibilityToggled) isEvent() {}
func (SubmitRequested) isEvent()           {}
func (AuthResolved) isEvent()              {}

// Reduce applies ev to s and returns the next state. It has no side effects.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case EmailChanged:
		s.Email = ev.Value
	case PasswordChanged:
		s.Password = ev.Value
	case RememberMeChanged:
		s.RememberMe = ev.Value
	case Blurred:
		s.Touched = s.Touched.Mark(ev.Field)
	case PasswordVisibilityToggled:
		s.ShowPassword = !s.ShowPassword
		return s
	case SubmitRequested:
		return submit(s)
	case AuthResolved:
		return resolve(s, ev.Err)
	default:
		return s
	}
	s.Errors = fieldErrors(s, s.Errors.General)
	return s
}

// submit runs the Validating phase and lands in Idle or Submitting.
func submit(s State) State {
	if s.Submitting {
		return s
	}
	s.Touched = Touched{Email: true, Password: true}
	s.Errors = fieldErrors(s, "")
	if s.Errors.Any() {
		return s
	}
	s.Submitting = true
	return s
}

func resolve(s State, err error) State {
	if !s.Submitting {
		return s
	}
	s.Submitting = false
	if err != nil {
		s.Errors = Errors{General: GenericFailureMessage}
		return s
	}
	s.Errors = Errors{}
	s.Authenticated = true
	return s
}

// fieldErrors recomputes the visible field errors. Untouched fields never show
// an error, whatever their value.
func fieldErrors(s State, general string) Errors {
	errs := Errors{General: general}
	if s.Touched.Email {
		errs.Email = message(ValidateEmail(s.Email))
	}
	if s.Touched.Password {
		errs.Password = message(ValidatePassword(s.Password))
	}
	return errs
}

// Restore rebuilds a snapshot from the values a browser carries between
// requests. Field errors are recomputed for touched fields; the general error
// and the submission flags are never restored.
func Restore(s State) State {
	s.Submitting = false
	s.Authenticated = false
	s.Errors = fieldErrors(s, "")
	return s
}
