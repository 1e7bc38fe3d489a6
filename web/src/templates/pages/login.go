package pages

import (
	"encoding/json"
	"strconv"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Endpoints the login form talks to.
const (
	LoginURL         = "/login"
	LoginValidateURL = "/login/validate"
)

// Values of the "event" form field sent to LoginValidateURL.
const (
	LoginEventInput          = "input"
	LoginEventBlur           = "blur"
	LoginEventTogglePassword = "toggle_password"
)

const inputClass = "w-full p-3 border rounded-md focus:outline-none focus:ring-1 focus:ring-primary"

// Validation requests queue behind each other on the form, and a submit
// aborts whatever validation is still in flight, so responses are swapped in
// the order they were sent.
var (
	validateSync = g.Attr("hx-sync", "closest form:queue all")
	submitSync   = g.Attr("hx-sync", "this:replace")
)

// Login renders the login page body for s.
func Login(s login.State) g.Node {
	return h.Section(
		h.Class("bg-gray-50"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 py-12"),
			h.Div(
				h.Class("max-w-md mx-auto"),
				h.Div(
					h.Class("text-center mb-8"),
					h.H1(h.Class("text-3xl font-bold mb-2"), g.Text("Welcome Back")),
					h.P(h.Class("text-gray-600"), g.Text("Log in to your account to manage your donations and requests")),
				),
				LoginCard(s),
			),
		),
	)
}

// LoginCard is the part of the page replaced after a submit.
func LoginCard(s login.State) g.Node {
	return h.Div(
		h.ID("login-card"),
		h.Class("bg-white p-8 rounded-lg shadow-md"),
		g.If(s.Errors.General != "", h.Div(
			h.ID("login-general-error"),
			h.Class("mb-6 bg-red-50 border border-red-200 text-red-700 px-4 py-3 rounded flex items-start"),
			g.Attr("role", "alert"),
			partials.AlertCircleIcon(),
			h.Span(g.Text(s.Errors.General)),
		)),
		loginForm(s),
		socialLogin(),
		h.Div(
			h.Class("mt-6 text-center"),
			h.P(
				h.Class("text-sm text-gray-600"),
				g.Text("Don't have an account? "),
				h.A(h.Href("/register"), h.Class("text-primary font-medium hover:underline"), g.Text("Register Now")),
			),
		),
	)
}

func loginForm(s login.State) g.Node {
	return h.Form(
		h.ID("login-form"),
		h.Method("post"),
		h.Action(LoginURL),
		g.Attr("novalidate"),
		hx.Post(LoginURL),
		hx.Target("#login-card"),
		hx.Swap("outerHTML"),
		hx.Indicator("#login-submit"),
		g.Attr("hx-disabled-elt", "#login-submit"),
		submitSync,
		h.Div(
			h.Class("space-y-4"),
			// Keystrokes anywhere in the fields re-validate touched fields.
			hx.Post(LoginValidateURL),
			hx.Trigger("input delay:250ms"),
			hx.Vals(vals(map[string]string{"event": LoginEventInput})),
			hx.Include("closest form"),
			hx.Swap("none"),
			validateSync,
			TouchedInputs(s, false),
			emailField(s),
			passwordField(s),
			h.Div(
				h.Class("flex items-center justify-between"),
				h.Div(
					h.Class("flex items-center"),
					h.Input(
						h.Type("checkbox"),
						h.ID("remember"),
						h.Name("remember"),
						h.Value("true"),
						h.Class("mr-2"),
						g.If(s.RememberMe, h.Checked()),
					),
					h.Label(h.For("remember"), h.Class("text-sm text-gray-600"), g.Text("Remember me")),
				),
				h.A(h.Href("/forgot-password"), h.Class("text-sm text-primary font-medium"), g.Text("Forgot password?")),
			),
			submitButton(s),
		),
	)
}

func emailField(s login.State) g.Node {
	return h.Div(
		h.Label(h.For("email"), h.Class("block text-sm font-medium mb-1"), g.Text("Email Address")),
		h.Input(
			h.ID("email"),
			h.Name("email"),
			h.Type("email"),
			h.AutoComplete("email"),
			h.Required(),
			h.Value(s.Email),
			c.Classes{inputClass: true, "border-red-500": s.Errors.Email != ""},
			h.Aria("invalid", strconv.FormatBool(s.Errors.Email != "")),
			h.Aria("describedby", "email-error"),
			hx.Post(LoginValidateURL),
			hx.Trigger("blur"),
			hx.Vals(vals(map[string]string{"event": LoginEventBlur, "field": string(login.FieldEmail)})),
			validateSync,
		),
		FieldError(login.FieldEmail, s.Errors.Email, false),
	)
}

func passwordField(s login.State) g.Node {
	return h.Div(
		h.Label(h.For("password"), h.Class("block text-sm font-medium mb-1"), g.Text("Password")),
		PasswordControl(s, false),
		FieldError(login.FieldPassword, s.Errors.Password, false),
	)
}

// PasswordControl is the password input with its visibility toggle. Toggling
// re-renders it with the same value and a different input type.
func PasswordControl(s login.State, oob bool) g.Node {
	inputType, label := "password", "Show password"
	toggleIcon := partials.EyeIcon()
	if s.ShowPassword {
		inputType, label = "text", "Hide password"
		toggleIcon = partials.EyeOffIcon()
	}

	return h.Div(
		h.ID("password-control"),
		h.Class("relative"),
		g.If(oob, hx.SwapOOB("true")),
		h.Input(
			h.ID("password"),
			h.Name("password"),
			h.Type(inputType),
			h.AutoComplete("current-password"),
			h.Required(),
			h.Value(s.Password),
			c.Classes{inputClass: true, "border-red-500": s.Errors.Password != ""},
			h.Aria("invalid", strconv.FormatBool(s.Errors.Password != "")),
			h.Aria("describedby", "password-error"),
			hx.Post(LoginValidateURL),
			hx.Trigger("blur"),
			hx.Vals(vals(map[string]string{"event": LoginEventBlur, "field": string(login.FieldPassword)})),
			validateSync,
		),
		h.Button(
			h.Type("button"),
			h.Class("absolute right-3 top-1/2 transform -translate-y-1/2 text-gray-500"),
			h.Aria("label", label),
			hx.Post(LoginValidateURL),
			hx.Trigger("click"),
			hx.Vals(vals(map[string]string{"event": LoginEventTogglePassword})),
			validateSync,
			toggleIcon,
		),
	)
}

// FieldError renders the message slot under a field. The slot is always
// present, empty when there is no error, so out-of-band swaps have a target.
func FieldError(field login.Field, msg string, oob bool) g.Node {
	return h.P(
		h.ID(string(field)+"-error"),
		h.Class("mt-1 text-sm text-red-600 empty:hidden"),
		g.Attr("aria-live", "polite"),
		g.If(oob, hx.SwapOOB("true")),
		g.Text(msg),
	)
}

// TouchedInputs carries the touch and visibility flags between requests.
func TouchedInputs(s login.State, oob bool) g.Node {
	return h.Div(
		h.ID("login-flags"),
		h.Class("hidden"),
		g.If(oob, hx.SwapOOB("true")),
		hidden("touched_email", s.Touched.Email),
		hidden("touched_password", s.Touched.Password),
		hidden("show_password", s.ShowPassword),
	)
}

// LoginFeedback is the out-of-band response to a validation request. The
// password control is only re-rendered when its masking changed, so typing in
// it never loses focus.
func LoginFeedback(s login.State, passwordToggled bool) g.Node {
	return g.Group{
		FieldError(login.FieldEmail, s.Errors.Email, true),
		FieldError(login.FieldPassword, s.Errors.Password, true),
		TouchedInputs(s, true),
		g.If(passwordToggled, PasswordControl(s, true)),
	}
}

func submitButton(s login.State) g.Node {
	return h.Button(
		h.ID("login-submit"),
		h.Type("submit"),
		h.Class("w-full bg-primary text-white rounded-md py-3 font-medium flex items-center justify-center transition-colors hover:bg-primary/90 focus:outline-none focus:ring-2 focus:ring-primary focus:ring-offset-2 disabled:opacity-75"),
		g.If(s.Submitting, h.Disabled()),
		g.If(s.Submitting, g.Group{partials.Spinner(), g.Text("Logging in...")}),
		g.If(!s.Submitting, g.Group{
			h.Span(h.Class("when-idle"), g.Text("Log In")),
			h.Span(h.Class("when-busy items-center"), partials.Spinner(), g.Text("Logging in...")),
		}),
	)
}

func socialLogin() g.Node {
	return h.Div(
		h.Class("mt-6"),
		h.Div(
			h.Class("relative"),
			h.Div(h.Class("absolute inset-0 flex items-center"), h.Div(h.Class("w-full border-t border-gray-300"))),
			h.Div(h.Class("relative flex justify-center text-sm"), h.Span(h.Class("px-2 bg-white text-gray-500"), g.Text("Or continue with"))),
		),
		h.Div(
			h.Class("mt-6 grid grid-cols-2 gap-3"),
			socialButton("Google", partials.GoogleIcon()),
			socialButton("GitHub", partials.GitHubIcon()),
		),
	)
}

func socialButton(provider string, icon g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("w-full flex items-center justify-center px-4 py-2 border rounded-md shadow-sm text-sm font-medium text-gray-700 bg-white hover:bg-gray-50 transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-gray-500"),
		h.Aria("label", "Sign in with "+provider),
		icon,
		g.Text(provider),
	)
}

func hidden(name string, v bool) g.Node {
	return h.Input(h.Type("hidden"), h.ID(name), h.Name(name), h.Value(strconv.FormatBool(v)))
}

// vals encodes an hx-vals object. Marshalling a string map cannot fail.
func vals(m map[string]string) string {
	b, _ := json.Marshal(m)
	return string(b)
}
