package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func loginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginIssuesToken(t *testing.T) {
	e := newTestEcho()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	h := NewAuthHandler(string(hash), testJWTSecret)

	c, rec := loginContext(e, `{"password":"correct horse"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims := &models.OperatorClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "operator", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newTestEcho()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	h := NewAuthHandler(string(hash), testJWTSecret)

	c, _ := loginContext(e, `{"password":"battery staple"}`)
	loginErr := h.Login(c)
	require.Error(t, loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.(*echo.HTTPError).Code)
}

func TestLoginMissingPassword(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler("whatever", testJWTSecret)

	c, _ := loginContext(e, `{}`)
	loginErr := h.Login(c)
	require.Error(t, loginErr)
	assert.Equal(t, http.StatusBadRequest, loginErr.(*echo.HTTPError).Code)
}
