package handlers

import (
	"errors"
	"net/http"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/middleware"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/view"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/pages"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	loginSessionName   = "login-session"
	loginSessionKey    = "form_id"
	loginTouchedEmail  = "touched_email"
	loginTouchedPasswd = "touched_password"
	loginTitle         = "Log In"
)

// LoginHandler serves the login page and drives its form.
type LoginHandler struct {
	auth     login.Authenticator
	inFlight *login.InFlight
}

// NewLoginHandler creates a new LoginHandler submitting to auth.
func NewLoginHandler(auth login.Authenticator) *LoginHandler {
	return &LoginHandler{
		auth:     auth,
		inFlight: login.NewInFlight(),
	}
}

// LoginGet renders an empty login form (GET /login).
func (h *LoginHandler) LoginGet(c echo.Context) error {
	h.formID(c)
	h.resetTouched(c)
	return renderPage(c, http.StatusOK, loginTitle, pages.Login(login.State{}))
}

// LoginValidate applies one field event and returns the out-of-band fragments
// that changed (POST /login/validate).
func (h *LoginHandler) LoginValidate(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid validation event")
	}

	s := form.State()
	toggled := false
	switch form.Event {
	case pages.LoginEventBlur:
		if form.Field == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "blur requires a field")
		}
		s = login.Reduce(s, login.Blurred{Field: login.Field(form.Field)})
	case pages.LoginEventTogglePassword:
		s = login.Reduce(s, login.PasswordVisibilityToggled{})
		toggled = true
	default:
		s = login.Reduce(s, login.EmailChanged{Value: form.Email})
		s = login.Reduce(s, login.PasswordChanged{Value: form.Password})
		s = login.Reduce(s, login.RememberMeChanged{Value: form.Remember})
	}

	s = h.mergeTouched(c, s)
	return c.Render(http.StatusOK, "", pages.LoginFeedback(s, toggled))
}

// LoginPost validates the whole form and, when it is valid, runs one attempt
// against the authenticator (POST /login).
//
// htmx requests always get a 200 with the re-rendered card so the swap
// happens. Plain form posts get the full page with 422 for a form that failed
// validation and 401 for a refused attempt.
func (h *LoginHandler) LoginPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	key := h.formID(c)
	if !h.inFlight.Acquire(key) {
		logger.Warn("Login submit rejected, attempt already in flight")
		return echo.NewHTTPError(http.StatusConflict, "A login attempt is already in progress.")
	}
	defer h.inFlight.Release(key)
	logger.Debug("Login attempt started", "in_flight", h.inFlight.Len())

	ctrl := login.NewController(h.auth, login.WithState(form.State()), login.WithLogger(logger))
	s, err := ctrl.Submit(c.Request().Context())
	s = h.mergeTouched(c, s)

	switch {
	case err == nil:
		view.SetFlashSuccess(c, "You are now logged in.")
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", "/")
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, login.ErrInvalidFields):
		return h.renderForm(c, http.StatusUnprocessableEntity, s)
	case errors.Is(err, login.ErrAuthenticationFailed):
		logger.Info("Login attempt refused")
		return h.renderForm(c, http.StatusUnauthorized, s)
	default:
		logger.Error("Login attempt failed", "error", err)
		return h.renderForm(c, http.StatusUnauthorized, s)
	}
}

func (h *LoginHandler) renderForm(c echo.Context, status int, s login.State) error {
	if isHTMX(c) {
		return c.Render(http.StatusOK, "", pages.LoginCard(s))
	}
	return renderPage(c, status, loginTitle, pages.Login(s))
}

// formID returns the id identifying this browser's login form, creating and
// storing one if the session has none yet. Without a usable session every
// request gets a fresh id.
func (h *LoginHandler) formID(c echo.Context) string {
	sess, err := session.Get(loginSessionName, c)
	if err != nil {
		return uuid.NewString()
	}
	if id, ok := sess.Values[loginSessionKey].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values[loginSessionKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save login session", "error", err)
	}
	return id
}

// mergeTouched folds the touch flags already recorded for this form into s
// and records the union. Requests can arrive out of order, and one sent
// before a blur or a submit carries flags that are already stale; merging
// keeps every flag the page has shown as set.
func (h *LoginHandler) mergeTouched(c echo.Context, s login.State) login.State {
	sess, err := session.Get(loginSessionName, c)
	if err != nil {
		return s
	}
	emailHeld, _ := sess.Values[loginTouchedEmail].(bool)
	passwordHeld, _ := sess.Values[loginTouchedPasswd].(bool)
	held := login.Touched{Email: emailHeld, Password: passwordHeld}

	merged := s.Touched.Merge(held)
	if merged != held {
		sess.Values[loginTouchedEmail] = merged.Email
		sess.Values[loginTouchedPasswd] = merged.Password
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("Failed to save login session", "error", err)
		}
	}
	if merged == s.Touched {
		return s
	}

	general := s.Errors.General
	s.Touched = merged
	s = login.Restore(s)
	s.Errors.General = general
	return s
}

// resetTouched forgets the touch flags; a freshly loaded form starts clean.
func (h *LoginHandler) resetTouched(c echo.Context) {
	sess, err := session.Get(loginSessionName, c)
	if err != nil {
		return
	}
	_, hasEmail := sess.Values[loginTouchedEmail]
	_, hasPasswd := sess.Values[loginTouchedPasswd]
	if !hasEmail && !hasPasswd {
		return
	}
	delete(sess.Values, loginTouchedEmail)
	delete(sess.Values, loginTouchedPasswd)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save login session", "error", err)
	}
}
