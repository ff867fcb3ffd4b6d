package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

// HomeForRole is the landing page of each role.
func HomeForRole(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/teacher"
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect(HomeForRole(claims.Role))
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Đăng nhập - Trường Mầm Non",
		"Next":  c.Query("next"),
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Hồ sơ - Trường Mầm Non",
		"CurrentPage": "profile",
		"user":        user,
		"FullName":    user.FullName,
		"Username":    user.Username,
		"Role":        string(user.Role),
	})
}

// AuthMiddleware validates the JWT cookie and sets the user context. Page
// requests without a valid token are redirected to login with the original
// destination preserved in the next parameter.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect(loginRedirect(c.OriginalURL()))
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect(loginRedirect(c.OriginalURL()))
	}

	user := &models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		FullName: claims.FullName,
		Role:     claims.Role,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user", user)

	return c.Next()
}

func loginRedirect(next string) string {
	if next == "" || next == "/" {
		return "/auth/login"
	}
	return "/auth/login?next=" + url.QueryEscape(next)
}

// RequireRole rejects authenticated users whose role does not match.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if user.Role != role {
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
			}
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
