package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
)

// DashboardPath destino por defecto tras el login.
const DashboardPath = "/dashboard"

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	sessionTTL   time.Duration
	secureCookie bool
	log          zerolog.Logger
}

// NewAuthHandler construye el handler de auth. secureCookie marca la cookie como Secure (HTTPS).
func NewAuthHandler(uc *auth.AuthUseCase, sessionTTL time.Duration, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessionTTL: sessionTTL, secureCookie: secureCookie, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, callbackUrl"
// @Success      303
// @Failure      401   {object}  dto.AuthErrorResponse
// @Failure      500   {object}  dto.AuthErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Type: "invalid-credentials", Message: "Invalid credentials."})
	}
	session, err := h.uc.Authenticate(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Type: "invalid-credentials", Message: "Invalid credentials."})
		}
		h.log.Error().Err(err).Msg("login fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AuthErrorResponse{Type: "other-error", Message: "Something went wrong."})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.Info().Str("user_id", session.User.ID).Msg("sesión iniciada")
	return c.Redirect(safeCallback(in.CallbackURL), fiber.StatusSeeOther)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(SessionCookie)
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

// safeCallback solo acepta rutas locales; cualquier otra cosa vuelve al dashboard.
func safeCallback(callback string) string {
	if !strings.HasPrefix(callback, "/") || strings.HasPrefix(callback, "//") || strings.Contains(callback, "\\") {
		return DashboardPath
	}
	return callback
}
