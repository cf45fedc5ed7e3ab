package auth

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// ControllerRoutes are the paths the gateway mounts
type ControllerRoutes struct {
	Login  string
	Logout string
	Me     string
}

// Controller serves the session gateway surface: credential exchange,
// introspection, and logout. One cookie write per successful login, none
// on any failure path.
type Controller struct {
	exchanger CredentialExchanger
	verifier  TokenVerifier
	cfg       Config
	Routes    *ControllerRoutes
	Logger    Logger
}

// NewController wires the gateway HTTP surface
func NewController(exchanger CredentialExchanger, verifier TokenVerifier, cfg Config) *Controller {
	return &Controller{
		exchanger: exchanger,
		verifier:  verifier,
		cfg:       cfg,
		Logger:    defLogger{},
		Routes: &ControllerRoutes{
			Login:  "/api/login",
			Logout: "/api/logout",
			Me:     "/api/me",
		},
	}
}

func (a *Controller) WithLogger(logger Logger) *Controller {
	if logger != nil {
		a.Logger = logger
	}
	return a
}

// RegisterRoutes mounts the gateway endpoints on the app
func (a *Controller) RegisterRoutes(app *fiber.App) {
	app.Post(a.Routes.Login, a.LoginPost)
	app.Post(a.Routes.Logout, a.LogoutPost)
	app.Get(a.Routes.Me, a.Me)
}

// LoginRequest payload
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginPost exchanges credentials for a session token. On success the token
// is set as the session cookie and also returned in the body so the caller
// can mirror it for bearer use on mutating calls.
func (a *Controller) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("LoginPost parse payload", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to parse request",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	token, err := a.exchanger.Exchange(c.Context(), payload.Username, payload.Password)
	if err != nil {
		a.Logger.Info("LoginPost exchange failed", "username", payload.Username, "error", err)

		var richErr *errors.Error
		if errors.As(err, &richErr) && richErr.Category == errors.CategoryAuth {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": richErr.Message,
			})
		}

		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Login error",
		})
	}

	a.setCookieToken(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// Me introspects the session cookie. Every non valid outcome maps to a null
// user here: this surface cannot tell "never logged in" from "expired", by
// policy of this caller, not of the verifier.
func (a *Controller) Me(c *fiber.Ctx) error {
	result := a.verifier.Verify(c.Cookies(a.cfg.GetCookieName()))

	if !result.Valid() {
		if result.Status != StatusAbsent {
			a.Logger.Info("Me introspection degraded to anonymous", "status", result.Status.String())
		}
		return c.JSON(fiber.Map{"user": nil})
	}

	return c.JSON(fiber.Map{"user": result.Claims})
}

// LogoutPost clears the session cookie. There is no server side revocation:
// a captured, still valid token stays usable until expiry.
func (a *Controller) LogoutPost(c *fiber.Ctx) error {
	a.cookieDel(c, a.cfg.GetCookieName())
	return c.JSON(fiber.Map{"success": true})
}

func (a *Controller) setCookieToken(c *fiber.Ctx, val string) {
	c.Cookie(&fiber.Cookie{
		Name:     a.cfg.GetCookieName(),
		Value:    val,
		Path:     "/",
		MaxAge:   86400,
		HTTPOnly: true,
		Secure:   a.cfg.IsProduction(),
		SameSite: "Lax",
	})
}

func (a *Controller) cookieDel(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   a.cfg.IsProduction(),
		SameSite: "Lax",
	})
}
