package handler_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberpalace/hotel-booking/internal/catalog"
	"github.com/amberpalace/hotel-booking/internal/config"
	"github.com/amberpalace/hotel-booking/internal/database"
	"github.com/amberpalace/hotel-booking/internal/handler"
	"github.com/amberpalace/hotel-booking/internal/middleware"
	"github.com/amberpalace/hotel-booking/internal/model"
	"github.com/amberpalace/hotel-booking/internal/pricing"
	"github.com/amberpalace/hotel-booking/internal/repository"
	"github.com/amberpalace/hotel-booking/internal/router"
	"github.com/amberpalace/hotel-booking/internal/service"
	"github.com/amberpalace/hotel-booking/internal/utils"
)

// ---- test server -----------------------------------------------------------

const (
	testJWTSecret = "test-secret"
	testAdminPass = "admin123"
)

// newTestServer wires the whole stack: echo routes, real handlers and
// service over an in-memory SQLite database. Redis-backed middleware
// runs in passthrough mode, exactly as in a deployment without Redis.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db, "sqlite3"))

	cat := catalog.Default()
	repo := repository.NewBookingRepo(db)
	calc := pricing.NewCalculator(cat, 0)
	svc := service.NewBooking(repo, calc, cat, nil, time.UTC)

	cfg := config.Config{
		JWTSecret:    testJWTSecret,
		AccessTTLMin: 60,
	}
	// bcrypt.MinCost keeps the login tests fast.
	secret, err := utils.NewAdminSecret(testAdminPass, 4)
	require.NoError(t, err)

	rateLimit := middleware.NewTokenBucket(config.RateLimitConfig{}, nil)
	cache := middleware.NewRedisCache(config.CacheConfig{}, nil)

	e := echo.New()
	router.RegisterRoutes(e, &handler.HealthHandler{DB: db})
	router.RegisterPublic(e, handler.NewBookingHandler(svc), handler.NewCatalogHandler(cat), rateLimit, cache)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, secret, svc), cfg.JWTSecret, rateLimit)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validSubmitBody = `{
	"name": "Ravi Kumar",
	"email": "ravi@example.com",
	"phone": "+91 9876543210",
	"package": "Eco",
	"check_in": "2026-03-01",
	"check_out": "2026-03-03",
	"guests": 2,
	"pay_option": "Pay Later (reserve now)",
	"agree_terms": true
}`

type submitResp struct {
	Status      string        `json:"status"`
	Errors      []string      `json:"errors"`
	Error       string        `json:"error"`
	Reservation model.Booking `json:"reservation"`
}

// ---- POST /v1/bookings -------------------------------------------------------

func TestSubmitBooking_Confirmed(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp submitResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Confirmed", resp.Status)
	assert.Regexp(t, `^AP-\d{6}-[A-F0-9]{8}$`, resp.Reservation.Ref)
	assert.Equal(t, int64(15000), resp.Reservation.Subtotal)
	assert.Equal(t, int64(1800), resp.Reservation.Tax)
	assert.Equal(t, int64(16800), resp.Reservation.Total)
	assert.Equal(t, "Pay Later", resp.Reservation.PayStatus)
	assert.Positive(t, resp.Reservation.ID)
}

func TestSubmitBooking_RejectedWithEveryProblem(t *testing.T) {
	e := newTestServer(t)

	body := `{
		"name": "",
		"email": "nope",
		"phone": "x",
		"package": "Luxury",
		"check_in": "bad",
		"check_out": "2026-03-03",
		"guests": 0,
		"agree_terms": false
	}`
	rec := doJSON(e, http.MethodPost, "/v1/bookings", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp submitResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Rejected", resp.Status)
	assert.Len(t, resp.Errors, 7)
}

func TestSubmitBooking_MalformedJSON(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/bookings", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid body")
}

func TestSubmitBooking_UnknownAddOnRejected(t *testing.T) {
	e := newTestServer(t)

	body := strings.Replace(validSubmitBody, `"guests": 2,`, `"guests": 2, "addons": ["Spa Day"],`, 1)
	rec := doJSON(e, http.MethodPost, "/v1/bookings", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp submitResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Rejected", resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "unknown add-on")
}

// ---- GET /v1/reservations ------------------------------------------------------

func TestLookupReservation_FoundByEmail(t *testing.T) {
	e := newTestServer(t)
	created := doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody)
	require.Equal(t, http.StatusCreated, created.Code)

	rec := doJSON(e, http.MethodGet, "/v1/reservations?email=ravi@example.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp submitResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Found", resp.Status)
	assert.Equal(t, "ravi@example.com", resp.Reservation.Email)
}

func TestLookupReservation_RefNarrowsMatch(t *testing.T) {
	e := newTestServer(t)
	first := doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody)
	require.Equal(t, http.StatusCreated, first.Code)
	second := doJSON(e, http.MethodPost, "/v1/bookings", validSubmitBody)
	require.Equal(t, http.StatusCreated, second.Code)

	var firstResp submitResp
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))

	rec := doJSON(e, http.MethodGet, "/v1/reservations?email=ravi@example.com&ref="+firstResp.Reservation.Ref, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp submitResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, firstResp.Reservation.Ref, resp.Reservation.Ref)
}

func TestLookupReservation_InvalidEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/reservations?email=not-an-email", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidInput")
}

func TestLookupReservation_Miss(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/reservations?email=nobody@example.com", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NotFound")
}

// ---- catalog and health ----------------------------------------------------------

func TestListPackages(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/packages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []catalog.Package `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Eco", resp.Items[0].Name)
	assert.Equal(t, "Prime", resp.Items[1].Name)
}

func TestListAddOns(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/addons", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []catalog.AddOn `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 3)
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
