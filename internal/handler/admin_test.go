package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberpalace/hotel-booking/internal/utils"
)

// adminToken logs in through the real endpoint and returns the token.
func adminToken(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/admin/login", `{"password":"`+testAdminPass+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Access struct {
			Token   string    `json:"token"`
			Expires time.Time `json:"expires"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	assert.True(t, resp.Access.Expires.After(time.Now()))
	return resp.Access.Token
}

func doAuthed(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// ---- POST /v1/admin/login ----------------------------------------------------

func TestAdminLogin_WrongPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/admin/login", `{"password":"letmein"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAdminLogin_EmptyPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/admin/login", `{}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- GET /v1/admin/bookings ----------------------------------------------------

func TestAdminListBookings_RequiresToken(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminListBookings_RejectsWrongRole(t *testing.T) {
	e := newTestServer(t)
	// A validly signed token with the wrong role must still be refused.
	guest, err := utils.NewAccessToken(testJWTSecret, "guest", "CUSTOMER", 5)
	require.NoError(t, err)

	rec := doAuthed(e, http.MethodGet, "/v1/admin/bookings", guest.Token)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminListBookings_RejectsForgedToken(t *testing.T) {
	e := newTestServer(t)
	forged, err := utils.NewAccessToken("some-other-secret", "admin", "ADMIN", 5)
	require.NoError(t, err)

	rec := doAuthed(e, http.MethodGet, "/v1/admin/bookings", forged.Token)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminListBookings_ReturnsNewestFirst(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody).Code)
	second := strings.Replace(validSubmitBody, "ravi@example.com", "sita@example.com", 1)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/bookings", second).Code)

	rec := doAuthed(e, http.MethodGet, "/v1/admin/bookings", adminToken(t, e))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []struct {
			Email string `json:"email"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "sita@example.com", resp.Items[0].Email)
	assert.Equal(t, "ravi@example.com", resp.Items[1].Email)
}

// ---- GET /v1/admin/bookings/export -----------------------------------------------

func TestAdminExport_StreamsCSVAttachment(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody).Code)

	rec := doAuthed(e, http.MethodGet, "/v1/admin/bookings/export", adminToken(t, e))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="amber_palace_bookings.csv"`)

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "ravi@example.com", rows[1][4])
}

func TestAdminExport_RequiresToken(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings/export", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
