package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ctxUserID   = "auth.user_id"
	ctxPublicID = "auth.public_id"
	ctxUserName = "auth.user_name"
	ctxUserRole = "auth.user_role"
)

// JWTAuth validates the Authorization bearer token and stashes the
// caller's identity on the echo context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims := jwt.MapClaims{}
			tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			uid, ok := claims["uid"].(float64)
			if !ok || uid <= 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "malformed token claims"})
			}
			c.Set(ctxUserID, uint64(uid))
			if sub, ok := claims["sub"].(string); ok {
				c.Set(ctxPublicID, sub)
			}
			if name, ok := claims["name"].(string); ok {
				c.Set(ctxUserName, name)
			}
			if role, ok := claims["role"].(string); ok {
				c.Set(ctxUserRole, role)
			}
			return next(c)
		}
	}
}

// RequireRole gates a route group to one role. Admin is not implicitly
// allowed through registrar routes; each portal lists its roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[Role(c)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}

func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// UserID returns the numeric id of the authenticated user, 0 when the
// route is unauthenticated.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get(ctxUserID).(uint64); ok {
		return v
	}
	return 0
}

func Role(c echo.Context) string {
	if v, ok := c.Get(ctxUserRole).(string); ok {
		return v
	}
	return ""
}

func UserName(c echo.Context) string {
	if v, ok := c.Get(ctxUserName).(string); ok {
		return v
	}
	return ""
}
