package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// clock is a settable time source for the backend.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) set(day string) {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	c.now = d.Add(10 * time.Hour)
	c.mu.Unlock()
}

// testServer is a router over a fresh backend of one variant.
type testServer struct {
	router *gin.Engine
	clock  *clock
}

func newTestServer(t *testing.T, variant string) *testServer {
	t.Helper()
	clk := &clock{}
	clk.set("2026-04-15")

	b := sqlite.NewBackend(sqlite.WithClock(clk.Now))
	require.NoError(t, b.Attach(types.Config{Variant: variant, DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })

	return &testServer{router: New(b, zerolog.Nop()).Router(), clock: clk}
}

// do sends a request with an optional JSON body and returns the recorder.
func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a generic JSON object.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// createID posts body to path, expects 201 and returns the id under key.
func (s *testServer) createID(t *testing.T, path, body, key string) int64 {
	t.Helper()
	w := s.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decode(t, w)[key].(float64)
	require.True(t, ok, "response has numeric %s", key)
	return int64(id)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, types.VariantHospital)
	w := s.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "hospital", body["variant"])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRouteIs404(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	w := s.do(t, http.MethodGet, "/api/patients", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "hospital routes are not mounted for gym")
	assert.Equal(t, "Not found", decode(t, w)["error"])
}

func TestMemberCRUD(t *testing.T) {
	s := newTestServer(t, types.VariantGym)

	id := s.createID(t, "/api/members",
		`{"first_name":"Jane","last_name":"Doe","trainer_id":"1","email":"jane@example.com","contact_number":"","gender":"Female","date_of_birth":"1992-02-29"}`,
		"member_id")
	assert.Positive(t, id)

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/members/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Jane", got["first_name"])
	assert.Equal(t, "Doe", got["last_name"])
	assert.Equal(t, "jane@example.com", got["email"])
	assert.Equal(t, "1992-02-29", got["date_of_birth"])
	assert.Equal(t, float64(1), got["trainer_id"])
	assert.Equal(t, "John", got["trainer_first_name"])
	assert.Nil(t, got["contact_number"])

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/members/%d", id),
		`{"first_name":"Janet","last_name":"Doe","trainer_id":2,"email":"janet@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Member updated successfully", decode(t, w)["message"])

	got = decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/members/%d", id), ""))
	assert.Equal(t, "Janet", got["first_name"])
	assert.Equal(t, "janet@example.com", got["email"])
	assert.Equal(t, float64(2), got["trainer_id"])
	assert.Nil(t, got["gender"], "update is a full replacement")

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/members/%d", id),
		`{"first_name":"Janet","last_name":"Doe","trainer_id":2,"email":"janet@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code, "unchanged update succeeds")

	list := decodeList(t, s.do(t, http.MethodGet, "/api/members", ""))
	assert.Len(t, list, 1)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/members/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Member deleted successfully", decode(t, w)["message"])

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/members/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/members/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateResponse(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	w := s.do(t, http.MethodPost, "/api/trainers", `{"first_name":"Kim","last_name":"Lee","hourly_rate":"60"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Trainer created successfully", body["message"])
	assert.Equal(t, float64(4), body["trainer_id"], "three trainers are seeded")
}

func TestValidationAndErrors(t *testing.T) {
	tests := []struct {
		name       string
		variant    string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"member without last name", types.VariantGym, http.MethodPost, "/api/members", `{"first_name":"Solo"}`, 400, "First name and last name are required"},
		{"member with blank last name", types.VariantGym, http.MethodPost, "/api/members", `{"first_name":"Solo","last_name":""}`, 400, "First name and last name are required"},
		{"membership missing fee", types.VariantGym, http.MethodPost, "/api/memberships", `{"member_id":1,"membership_type":"Monthly","start_date":"2026-01-01","end_date":"2026-02-01","payment_status":"Paid"}`, 400, "All fields are required"},
		{"attendance without member", types.VariantGym, http.MethodPost, "/api/attendance", `{}`, 400, "Member ID is required"},
		{"malformed json", types.VariantGym, http.MethodPost, "/api/members", `{"first_name":`, 400, "Invalid request body"},
		{"non-numeric id", types.VariantGym, http.MethodGet, "/api/members/abc", "", 400, types.ErrInvalidID.Error()},
		{"missing member", types.VariantGym, http.MethodGet, "/api/members/99999", "", 404, "Member not found"},
		{"update missing member", types.VariantGym, http.MethodPut, "/api/members/99999", `{"first_name":"A","last_name":"B"}`, 404, "Member not found"},
		{"delete missing trainer", types.VariantGym, http.MethodDelete, "/api/trainers/99999", "", 404, "Trainer not found"},
		{"membership of member without one", types.VariantGym, http.MethodGet, "/api/members/1/membership", "", 404, "Membership not found"},
		{"attendance for missing member", types.VariantGym, http.MethodPost, "/api/attendance", `{"member_id":424242}`, 404, "Member not found"},
		{"disease without name", types.VariantHospital, http.MethodPost, "/api/diseases", `{"severity":"Mild"}`, 400, "Disease name is required"},
		{"history without disease", types.VariantHospital, http.MethodPost, "/api/medical-history", `{"patient_id":1}`, 400, "Patient ID and disease ID are required"},
		{"checkin without patient", types.VariantHospital, http.MethodPost, "/api/checkins", `{"doctor_id":1}`, 400, "Patient ID is required"},
		{"missing patient", types.VariantHospital, http.MethodGet, "/api/patients/99999", "", 404, "Patient not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.variant)
			w := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantError, decode(t, w)["error"])
		})
	}
}

func TestInvalidCreateDoesNotPersist(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	w := s.do(t, http.MethodPost, "/api/members", `{"first_name":"Ghost"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, decodeList(t, s.do(t, http.MethodGet, "/api/members", "")))
}

func TestDuplicateEmailIsStoreError(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	s.createID(t, "/api/members", `{"first_name":"A","last_name":"One","email":"dup@example.com"}`, "member_id")
	w := s.do(t, http.MethodPost, "/api/members", `{"first_name":"B","last_name":"Two","email":"dup@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode(t, w)["error"], "UNIQUE")
}

func TestAttendanceOncePerDay(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	mid := s.createID(t, "/api/members", `{"first_name":"Al","last_name":"Bee"}`, "member_id")
	body := fmt.Sprintf(`{"member_id":"%d"}`, mid)

	w := s.do(t, http.MethodPost, "/api/attendance", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode(t, w)
	assert.Equal(t, "Attendance recorded successfully", first["message"])
	assert.Positive(t, first["attendance_id"])

	w = s.do(t, http.MethodPost, "/api/attendance", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Member has already checked in today", decode(t, w)["error"])

	today := decodeList(t, s.do(t, http.MethodGet, "/api/attendance/today", ""))
	require.Len(t, today, 1)
	assert.Equal(t, "2026-04-15", today[0]["attendance_date"])
	assert.Equal(t, "Al", today[0]["first_name"])

	s.clock.set("2026-04-16")
	w = s.do(t, http.MethodPost, "/api/attendance", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	history := decodeList(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/members/%d/attendance", mid), ""))
	assert.Len(t, history, 2)

	stats := decode(t, s.do(t, http.MethodGet, "/api/stats/attendance", ""))
	assert.Equal(t, float64(2), stats["total_attendance"])
	assert.Equal(t, float64(1), stats["today_attendance"])
	assert.Equal(t, float64(1), stats["unique_members"])
}

func TestPaidMembershipsStat(t *testing.T) {
	s := newTestServer(t, types.VariantGym)

	before := decode(t, s.do(t, http.MethodGet, "/api/stats/memberships", ""))
	paidBefore := before["paid_memberships"].(float64)

	for i := range 3 {
		mid := s.createID(t, "/api/members", fmt.Sprintf(`{"first_name":"P%d","last_name":"Payer"}`, i), "member_id")
		s.createID(t, "/api/memberships", fmt.Sprintf(
			`{"member_id":%d,"membership_type":"Monthly","start_date":"2026-04-01","end_date":"2026-05-01","monthly_fee":"25.00","payment_status":"Paid"}`, mid),
			"membership_id")
	}

	after := decode(t, s.do(t, http.MethodGet, "/api/stats/memberships", ""))
	assert.Equal(t, paidBefore+3, after["paid_memberships"])
	assert.Equal(t, float64(3), after["total_memberships"])
	assert.InDelta(t, 75.0, after["total_monthly_revenue"], 0.001)

	byType := decodeList(t, s.do(t, http.MethodGet, "/api/stats/membership-types", ""))
	require.Len(t, byType, 1)
	assert.Equal(t, "Monthly", byType[0]["membership_type"])

	expiring := decodeList(t, s.do(t, http.MethodGet, "/api/stats/expiring-memberships", ""))
	assert.Len(t, expiring, 3, "all end within thirty days of 2026-04-15")
}

func TestMembershipOfMember(t *testing.T) {
	s := newTestServer(t, types.VariantGym)
	mid := s.createID(t, "/api/members", `{"first_name":"Mo","last_name":"Ship"}`, "member_id")
	msid := s.createID(t, "/api/memberships", fmt.Sprintf(
		`{"member_id":%d,"membership_type":"Annual","start_date":"2026-01-01","end_date":"2026-12-31","monthly_fee":80,"payment_status":"Pending"}`, mid),
		"membership_id")

	got := decode(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/members/%d/membership", mid), ""))
	assert.Equal(t, float64(msid), got["membership_id"])
	assert.Equal(t, "Pending", got["payment_status"])

	w := s.do(t, http.MethodPost, "/api/memberships", fmt.Sprintf(
		`{"member_id":%d,"membership_type":"Annual","start_date":"2026-01-01","end_date":"2026-12-31","monthly_fee":80,"payment_status":"Paid"}`, mid))
	assert.Equal(t, http.StatusInternalServerError, w.Code, "one membership per member")
}

func TestHospitalFlow(t *testing.T) {
	s := newTestServer(t, types.VariantHospital)

	doctors := decodeList(t, s.do(t, http.MethodGet, "/api/doctors", ""))
	require.Len(t, doctors, 3)
	diseases := decodeList(t, s.do(t, http.MethodGet, "/api/diseases", ""))
	require.Len(t, diseases, 5)

	pid := s.createID(t, "/api/patients",
		fmt.Sprintf(`{"first_name":"Rae","last_name":"Nash","gender":"Female","doctor_id":%v,"blood_type":"A-"}`, doctors[0]["doctor_id"]),
		"patient_id")

	hid := s.createID(t, "/api/medical-history",
		fmt.Sprintf(`{"patient_id":%d,"disease_id":%v,"diagnosis_date":"2026-03-01","status":"Active"}`, pid, diseases[0]["disease_id"]),
		"history_id")
	assert.Positive(t, hid)

	history := decodeList(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/patients/%d/medical-history", pid), ""))
	require.Len(t, history, 1)
	assert.Equal(t, diseases[0]["name"], history[0]["disease_name"])

	body := fmt.Sprintf(`{"patient_id":%d,"doctor_id":%v,"notes":"follow-up"}`, pid, doctors[0]["doctor_id"])
	w := s.do(t, http.MethodPost, "/api/checkins", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Checkin recorded successfully", decode(t, w)["message"])

	w = s.do(t, http.MethodPost, "/api/checkins", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Patient has already checked in today", decode(t, w)["error"])

	checkins := decodeList(t, s.do(t, http.MethodGet, fmt.Sprintf("/api/patients/%d/checkins", pid), ""))
	require.Len(t, checkins, 1)
	assert.Equal(t, doctors[0]["last_name"], checkins[0]["doctor_last_name"])

	ps := decode(t, s.do(t, http.MethodGet, "/api/stats/patients", ""))
	assert.Equal(t, float64(1), ps["female_patients"])

	dist := decodeList(t, s.do(t, http.MethodGet, "/api/stats/diseases", ""))
	assert.Equal(t, float64(1), dist[0]["count"])

	cs := decode(t, s.do(t, http.MethodGet, "/api/stats/checkins", ""))
	assert.Equal(t, float64(1), cs["today_checkins"])

	loads := decodeList(t, s.do(t, http.MethodGet, "/api/stats/doctors", ""))
	assert.Equal(t, float64(1), loads[0]["checkin_count"])

	cid := checkins[0]["checkin_id"]
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/checkins/%v", cid), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/checkins/%v", cid), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Checkin not found", decode(t, w)["error"])
}
