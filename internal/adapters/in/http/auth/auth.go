// Package auth provides the Bearer-JWT middleware that resolves the
// calling user for every API route. Tokens are issued by the identity
// collaborator; this service only validates them.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"dronedelivery/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Principal represents the authenticated caller extracted from the JWT.
type Principal struct {
	UserID kernel.UUID
}

const principalContextKey = "auth.principal"

// FromContext retrieves the principal stored by the middleware.
func FromContext(ctx echo.Context) (Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(Principal)
	return p, ok
}

// Middleware returns an echo middleware that validates a Bearer HS256
// token and stores the resulting principal on the request context.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := parseHeader(ctx.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func parseHeader(header string, secret string) (Principal, error) {
	if header == "" {
		return Principal{}, errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errors.New("invalid authorization header")
	}

	return parseToken(strings.TrimSpace(parts[1]), secret)
}

func parseToken(tokenStr string, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	claims, _ := tok.Claims.(*jwt.RegisteredClaims)
	if claims == nil || claims.Subject == "" {
		return Principal{}, errors.New("invalid claims")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errors.New("invalid subject claim")
	}

	return Principal{UserID: userID}, nil
}
