package server

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/repository"
)

// sessionContextKey is where resolved sessions live on the echo context.
const sessionContextKey = "zshield.session"

// bearerToken extracts the token from an Authorization header. It returns
// an authentication error for a missing header, a non-Bearer scheme or an
// empty token. The caller cannot distinguish a malformed header from an
// unknown token; both surface as the same 401.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", apperr.Authentication("Authorization header required")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", apperr.Authentication("Invalid authorization format. Use: Bearer <token>")
	}

	token := parts[1]
	if strings.TrimSpace(token) == "" {
		return "", apperr.Authentication("Session token is required")
	}
	return token, nil
}

// RequireAuth gates a route on a valid bearer session. The resolved,
// activity-refreshed session is stored on the context for the handler.
// An expired session is deleted as a side effect before the 401.
func RequireAuth(sessions *repository.SessionRepository, logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				logger.Warn("rejected unauthenticated request")
				return err
			}

			session, ok := sessions.FindByID(token)
			if !ok {
				logger.Warnf("session not found or expired: %s...", shortToken(token))
				return apperr.Authentication("Invalid or expired session")
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// OptionalAuth resolves a session when a valid bearer token is present but
// never rejects: any parse or lookup failure just leaves the handler
// without a session.
func OptionalAuth(sessions *repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return next(c)
			}
			if session, ok := sessions.FindByID(token); ok {
				c.Set(sessionContextKey, session)
			}
			return next(c)
		}
	}
}

// sessionFromContext returns the session resolved by the auth middleware.
func sessionFromContext(c echo.Context) (models.Session, bool) {
	session, ok := c.Get(sessionContextKey).(models.Session)
	return session, ok
}

func shortToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}
