package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthUser represents an authenticated account extracted from a JWT.
type AuthUser struct {
	UserID string `json:"user_id"`
	GymID  string `json:"gym_id"`
	Role   string `json:"role"`
}

// Claims is the token payload issued at login.
type Claims struct {
	GymID string `json:"gym_id,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// contextKey is used for storing the user in the request context.
type contextKey string

const userContextKey contextKey = "authenticated_user"

// CreateToken signs a JWT for an account.
func CreateToken(secret string, ttl time.Duration, userID, gymID, role string) (string, error) {
	claims := Claims{
		GymID: gymID,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// JWTConfig holds the configuration for the JWT middleware.
type JWTConfig struct {
	Secret    string
	Logger    *zap.Logger
	SkipPaths []string
}

// JWTMiddleware validates the Bearer token and stores the authenticated
// user in the request context.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authorization header required",
					"code":  "MISSING_AUTH_HEADER",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid authorization header format. Expected: Bearer <token>",
					"code":  "INVALID_AUTH_FORMAT",
				})
			}

			claims := new(Claims)
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Secret), nil
			})

			if err != nil || !token.Valid {
				config.Logger.Warn("JWT validation failed",
					zap.Error(err),
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "INVALID_TOKEN",
				})
			}

			authUser := &AuthUser{
				UserID: claims.Subject,
				GymID:  claims.GymID,
				Role:   claims.Role,
			}

			ctx := context.WithValue(c.Request().Context(), userContextKey, authUser)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Set("user_id", authUser.UserID)
			c.Set("gym_id", authUser.GymID)

			config.Logger.Debug("User authenticated",
				zap.String("user_id", authUser.UserID),
				zap.String("role", authUser.Role),
				zap.String("path", path))

			return next(c)
		}
	}
}

// RequireRoles gates a route group to the given roles. It must run
// after JWTMiddleware.
func RequireRoles(logger *zap.Logger, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUserFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication required",
					"code":  "AUTH_REQUIRED",
				})
			}

			if _, ok := allowed[user.Role]; !ok {
				logger.Warn("Role denied",
					zap.String("user_id", user.UserID),
					zap.String("role", user.Role),
					zap.String("path", c.Request().URL.Path))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "Insufficient role",
					"code":  "FORBIDDEN_ROLE",
				})
			}

			return next(c)
		}
	}
}

// GetUserFromContext extracts the authenticated user from the request context.
func GetUserFromContext(c echo.Context) (*AuthUser, error) {
	user, ok := c.Request().Context().Value(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user found in context")
	}
	return user, nil
}

// RequireAuth is a helper to get the user or send the error response.
func RequireAuth(c echo.Context) (*AuthUser, error) {
	user, err := GetUserFromContext(c)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}
	return user, nil
}
