package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

// stubHandler answers every route with 200 and records the last route hit.
type stubHandler struct {
	hits []string
}

func (s *stubHandler) record(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.hits = append(s.hits, name)
		c.Status(http.StatusOK)
	}
}

func (s *stubHandler) ReserveSeats(c *ginext.Context)      { s.record("reserve")(c) }
func (s *stubHandler) ConfirmBooking(c *ginext.Context)    { s.record("confirm")(c) }
func (s *stubHandler) ReservationStatus(c *ginext.Context) { s.record("status")(c) }
func (s *stubHandler) GetBookingByPNR(c *ginext.Context)   { s.record("pnr")(c) }
func (s *stubHandler) ListMyBookings(c *ginext.Context)    { s.record("my")(c) }
func (s *stubHandler) CancelBooking(c *ginext.Context)     { s.record("cancel")(c) }
func (s *stubHandler) SeatMatrix(c *ginext.Context)        { s.record("matrix")(c) }
func (s *stubHandler) SearchTrains(c *ginext.Context)      { s.record("search")(c) }
func (s *stubHandler) CreateTrain(c *ginext.Context)       { s.record("train")(c) }
func (s *stubHandler) CreateSchedule(c *ginext.Context)    { s.record("schedule")(c) }
func (s *stubHandler) SetFare(c *ginext.Context)           { s.record("fare")(c) }
func (s *stubHandler) CreateStation(c *ginext.Context)     { s.record("station")(c) }
func (s *stubHandler) ListStations(c *ginext.Context)      { s.record("stations")(c) }
func (s *stubHandler) ListCoachTypes(c *ginext.Context)    { s.record("coach-types")(c) }
func (s *stubHandler) CreateUser(c *ginext.Context)        { s.record("user")(c) }
func (s *stubHandler) ListUsers(c *ginext.Context)         { s.record("users")(c) }

func passThrough(c *ginext.Context) { c.Next() }

func TestInitRouter_RateLimitGuardsReserveOnly(t *testing.T) {
	h := &stubHandler{}

	limited := 0
	limiter := func(c *ginext.Context) {
		limited++
		c.Next()
	}

	r := InitRouter("test", h, passThrough, limiter)

	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/booking/reserve-seats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, limited)

	do(http.MethodPost, "/api/booking/confirm")
	do(http.MethodGet, "/api/stations")
	do(http.MethodPost, "/api/seats/matrix")
	assert.Equal(t, 1, limited)

	do(http.MethodPost, "/api/booking/reserve-seats")
	assert.Equal(t, 2, limited)
}

func TestInitRouter_RateLimitRejectionStopsReserve(t *testing.T) {
	h := &stubHandler{}

	limiter := func(c *ginext.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests, slow down"})
	}

	r := InitRouter("test", h, passThrough, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/reserve-seats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Empty(t, h.hits)
}
