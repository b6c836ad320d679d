package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sajidspace/connectly/backend/internal/router"
	"github.com/sajidspace/connectly/backend/pkg/config"
	"github.com/sajidspace/connectly/backend/validators"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestAPI spins up the full route table over an in-memory database
func newTestAPI(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db, &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})
	return e, db
}

// doJSON performs a request against the test server and returns the recorder
func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its access token and ID
func registerUser(t *testing.T, e *echo.Echo, username string) (token string, id uint) {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token = body["access"].(string)
	user := body["user"].(map[string]interface{})
	return token, uint(user["id"].(float64))
}

func TestHealthz(t *testing.T) {
	e, _ := newTestAPI(t)
	rec := doJSON(t, e, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}
