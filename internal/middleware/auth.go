package middleware

import (
	"slices"
	"strconv"
	"strings"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/service"
	"github.com/labstack/echo/v4"
)

// TokenParser verifies access tokens.
type TokenParser interface {
	Parse(token string) (*service.Claims, error)
}

type AuthMiddleware struct {
	server *server.Server
	tokens TokenParser
}

func NewAuthMiddleware(s *server.Server, tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth accepts requests carrying "Authorization: Bearer <token>"
// with a valid token and records the caller's id and role.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return errs.NewAuthenticationError("Missing bearer token.")
		}

		claims, err := auth.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		userID := strconv.FormatInt(claims.UserID(), 10)
		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, claims.Role)

		setLogger(c, GetLogger(c).With().
			Str("user_id", userID).
			Str("user_role", claims.Role).
			Logger())

		return next(c)
	}
}

// RequireRole lets through callers whose role is one of roles. It must run
// after RequireAuth.
func (auth *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(roles, GetUserRole(c)) {
				GetLogger(c).Warn().
					Strs("required_roles", roles).
					Msg("caller lacks required role")
				return errs.NewForbiddenError("")
			}
			return next(c)
		}
	}
}
