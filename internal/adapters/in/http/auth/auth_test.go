package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dronedelivery/internal/adapters/in/http/auth"
	"dronedelivery/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func invoke(t *testing.T, authorization string) (*httptest.ResponseRecorder, *auth.Principal) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var captured *auth.Principal
	handler := auth.Middleware(testSecret)(func(ctx echo.Context) error {
		if p, ok := auth.FromContext(ctx); ok {
			captured = &p
		}
		return ctx.NoContent(http.StatusOK)
	})

	err := handler(ctx)
	if err != nil {
		e.HTTPErrorHandler(err, ctx)
	}

	return rec, captured
}

func TestMiddleware_ValidToken_SetsPrincipal(t *testing.T) {
	userID := kernel.NewUUID()

	rec, principal := invoke(t, "Bearer "+signToken(t, userID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.True(t, userID.IsEqual(principal.UserID))
}

func TestMiddleware_MissingHeader_Unauthorized(t *testing.T) {
	rec, principal := invoke(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestMiddleware_MalformedHeader_Unauthorized(t *testing.T) {
	rec, _ := invoke(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_WrongSecret_Unauthorized(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   kernel.NewUUID().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec, _ := invoke(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ExpiredToken_Unauthorized(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   kernel.NewUUID().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _ := invoke(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_NonUUIDSubject_Unauthorized(t *testing.T) {
	rec, _ := invoke(t, "Bearer "+signToken(t, "not-a-uuid"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
