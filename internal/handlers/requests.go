package handlers

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginForm is everything the login form posts. The touch and visibility flags
// travel in hidden inputs because the server keeps no per-form state.
type LoginForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	Remember        bool   `form:"remember"`
	TouchedEmail    bool   `form:"touched_email"`
	TouchedPassword bool   `form:"touched_password"`
	ShowPassword    bool   `form:"show_password"`

	// Only sent to the validation endpoint.
	Event string `form:"event" validate:"omitempty,oneof=input blur toggle_password"`
	Field string `form:"field" validate:"omitempty,oneof=email password"`
}

// State rebuilds the form snapshot the browser is showing.
func (f LoginForm) State() login.State {
	return login.Restore(login.State{
		Email:        f.Email,
		Password:     f.Password,
		RememberMe:   f.Remember,
		ShowPassword: f.ShowPassword,
		Touched:      login.Touched{Email: f.TouchedEmail, Password: f.TouchedPassword},
	})
}

// MenuRequest selects the mobile drawer state to render.
type MenuRequest struct {
	Open bool   `query:"open"`
	Path string `query:"path"`
}
