package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/pkg/jwt"
)

// SessionCookie nombre de la cookie que guarda el JWT de sesión.
const SessionCookie = "session"

// LoginPath página de login a la que se redirige a los navegadores sin sesión.
const LoginPath = "/login"

// LocalUserID key de Locals con el id del usuario de la sesión.
const LocalUserID = "user_id"

// AuthMiddleware exige una sesión válida: cookie "session" o header "Authorization: Bearer".
//   - Header Authorization presente pero inválido → 401 JSON.
//   - Sin sesión, o cookie inválida/expirada → 303 a /login?callbackUrl=<ruta pedida>.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
			}
			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
			}
			userID, _, err := jwt.Parse(jwtSecret, tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
			}
			return withSession(c, userID)
		}

		if cookie := c.Cookies(SessionCookie); cookie != "" {
			userID, _, err := jwt.Parse(jwtSecret, cookie)
			if err == nil {
				return withSession(c, userID)
			}
			c.ClearCookie(SessionCookie)
		}
		return c.Redirect(LoginURL(c.OriginalURL()), fiber.StatusSeeOther)
	}
}

func withSession(c *fiber.Ctx, userID string) error {
	c.Locals(LocalUserID, userID)
	return c.Next()
}

// LoginURL página de login que vuelve a callbackURL tras autenticarse.
func LoginURL(callbackURL string) string {
	return LoginPath + "?" + url.Values{"callbackUrl": {callbackURL}}.Encode()
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
