package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/domain"
	"servicehub/internal/repository"
)

type testEnv struct {
	t      *testing.T
	app    *App
	db     *gorm.DB
	tokens map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AppEnv:    "test",
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	}

	env := &testEnv{t: t, app: New(cfg, db), db: db, tokens: map[string]string{}}
	env.seedAdmin()
	return env
}

func (e *testEnv) seedAdmin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(e.t, err)

	users := repository.NewUserRepository(e.db)
	err = users.CreateWithProfile(e.t.Context(), &domain.User{
		Username:     "admin",
		Email:        "admin@servicehub.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}, nil, nil)
	require.NoError(e.t, err)
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.app.Router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) decode(w *httptest.ResponseRecorder) map[string]any {
	e.t.Helper()
	var body map[string]any
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (e *testEnv) data(w *httptest.ResponseRecorder) map[string]any {
	e.t.Helper()
	body := e.decode(w)
	data, ok := body["data"].(map[string]any)
	require.True(e.t, ok, "missing data envelope: %s", w.Body.String())
	return data
}

func (e *testEnv) errorCode(w *httptest.ResponseRecorder) string {
	e.t.Helper()
	body := e.decode(w)
	errObj, ok := body["error"].(map[string]any)
	require.True(e.t, ok, "missing error envelope: %s", w.Body.String())
	return errObj["code"].(string)
}

func (e *testEnv) login(username, password string) string {
	e.t.Helper()
	if token, ok := e.tokens[username]; ok {
		return token
	}

	w := e.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())

	token := e.data(w)["access_token"].(string)
	e.tokens[username] = token
	return token
}

func (e *testEnv) register(body gin.H) map[string]any {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/auth/register", "", body)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return e.data(w)["user"].(map[string]any)
}

// createService makes a catalog entry as admin and returns its id.
func (e *testEnv) createService(name string, price float64) int64 {
	e.t.Helper()
	admin := e.login("admin", "admin123")
	w := e.do(http.MethodPost, "/api/admin/services", admin, gin.H{
		"service_type": name,
		"base_price":   price,
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	svc := e.data(w)["service"].(map[string]any)
	return int64(svc["id"].(float64))
}

// registerProfessional registers and admin-approves a professional, returning
// the professional profile id.
func (e *testEnv) registerProfessional(username string, serviceID int64) int64 {
	e.t.Helper()
	user := e.register(gin.H{
		"username":   username,
		"email":      username + "@servicehub.test",
		"password":   "secret123",
		"role":       "professional",
		"service_id": serviceID,
	})
	profID := int64(user["professional"].(map[string]any)["id"].(float64))

	admin := e.login("admin", "admin123")
	w := e.do(http.MethodPost, fmt.Sprintf("/api/admin/professionals/%d/approve", profID), admin, nil)
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	return profID
}

func requestStatus(t *testing.T, data map[string]any) string {
	t.Helper()
	req, ok := data["request"].(map[string]any)
	require.True(t, ok)
	return req["status"].(string)
}

func TestFullLifecycle(t *testing.T) {
	env := newTestEnv(t)

	serviceID := env.createService("Plumbing", 100)
	profID := env.registerProfessional("bob", serviceID)
	env.register(gin.H{
		"username": "alice",
		"email":    "alice@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})

	alice := env.login("alice", "secret123")
	bob := env.login("bob", "secret123")

	// alice books bob
	w := env.do(http.MethodPost, "/api/customer/requests", alice, gin.H{
		"professional_id": profID,
		"proposed_price":  150.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := env.data(w)["request"].(map[string]any)
	assert.Equal(t, "REQUESTED", created["status"])
	reqID := int64(created["id"].(float64))

	// a second booking of the same professional is refused while one is active
	w = env.do(http.MethodPost, "/api/customer/requests", alice, gin.H{
		"professional_id": profID,
		"proposed_price":  150.0,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// bob sees the request in his incoming list
	w = env.do(http.MethodGet, "/api/professional/requests", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	incoming := env.data(w)["requests"].([]any)
	require.Len(t, incoming, 1)

	// paying before acceptance is a state conflict
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/pay", reqID), alice, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STATE_CONFLICT", env.errorCode(w))

	// bob accepts
	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/handle", reqID), bob, gin.H{"action": "accept"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ACCEPTED", requestStatus(t, env.data(w)))

	// accepting twice is a state conflict
	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/handle", reqID), bob, gin.H{"action": "accept"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// editing the price after acceptance is refused
	w = env.do(http.MethodPatch, fmt.Sprintf("/api/customer/requests/%d", reqID), alice, gin.H{"proposed_price": 200.0})
	assert.Equal(t, http.StatusConflict, w.Code)

	// reviewing before completion is refused
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/review", reqID), alice, gin.H{"rating": 5})
	assert.Equal(t, http.StatusConflict, w.Code)

	// bob closes the work
	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/close", reqID), bob, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	closed := env.data(w)["request"].(map[string]any)
	assert.Equal(t, "CLOSED", closed["status"])
	assert.NotNil(t, closed["date_of_completion"])

	// alice pays
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/pay", reqID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PAID", requestStatus(t, env.data(w)))

	// paying twice is refused
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/pay", reqID), alice, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// alice reviews once
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/review", reqID), alice, gin.H{"rating": 5, "remarks": "great work"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// a second review of the same request is refused
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/review", reqID), alice, gin.H{"rating": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	// the rating shows up on bob's public profile
	w = env.do(http.MethodGet, fmt.Sprintf("/api/professionals/%d", profID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := env.data(w)
	assert.Equal(t, 5.0, profile["avg_rating"])

	// a second customer runs the cycle and rates 4; the average becomes 4.5
	env.register(gin.H{
		"username": "dana",
		"email":    "dana@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})
	dana := env.login("dana", "secret123")

	w = env.do(http.MethodPost, "/api/customer/requests", dana, gin.H{
		"professional_id": profID,
		"proposed_price":  120.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	danaReqID := int64(env.data(w)["request"].(map[string]any)["id"].(float64))

	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/handle", danaReqID), bob, gin.H{"action": "accept"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/close", danaReqID), bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, fmt.Sprintf("/api/customer/requests/%d/review", danaReqID), dana, gin.H{"rating": 4})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodGet, fmt.Sprintf("/api/professionals/%d", profID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4.5, env.data(w)["avg_rating"])

	// and on bob's summary
	w = env.do(http.MethodGet, "/api/professional/summary", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := env.data(w)["summary"].(map[string]any)
	assert.Equal(t, 4.5, summary["avg_rating"])
}

func TestRejectAndReassign(t *testing.T) {
	env := newTestEnv(t)

	serviceID := env.createService("Cleaning", 80)
	bobID := env.registerProfessional("bob", serviceID)
	carolID := env.registerProfessional("carol", serviceID)
	env.register(gin.H{
		"username": "alice",
		"email":    "alice@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})

	alice := env.login("alice", "secret123")
	bob := env.login("bob", "secret123")
	admin := env.login("admin", "admin123")

	w := env.do(http.MethodPost, "/api/customer/requests", alice, gin.H{
		"professional_id": bobID,
		"proposed_price":  90.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reqID := int64(env.data(w)["request"].(map[string]any)["id"].(float64))

	// bob turns the job down
	w = env.do(http.MethodPost, fmt.Sprintf("/api/professional/requests/%d/handle", reqID), bob, gin.H{"action": "reject"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REJECTED", requestStatus(t, env.data(w)))

	// only an admin may reassign
	w = env.do(http.MethodPost, fmt.Sprintf("/api/admin/requests/%d/reassign", reqID), alice, gin.H{"professional_id": carolID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin hands it to carol and the lifecycle restarts
	w = env.do(http.MethodPost, fmt.Sprintf("/api/admin/requests/%d/reassign", reqID), admin, gin.H{"professional_id": carolID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reassigned := env.data(w)["request"].(map[string]any)
	assert.Equal(t, "REQUESTED", reassigned["status"])
	assert.Equal(t, float64(carolID), reassigned["professional_id"])

	// bob no longer sees it; carol does
	w = env.do(http.MethodGet, "/api/professional/requests", bob, nil)
	assert.Empty(t, env.data(w)["requests"])

	carol := env.login("carol", "secret123")
	w = env.do(http.MethodGet, "/api/professional/requests", carol, nil)
	assert.Len(t, env.data(w)["requests"].([]any), 1)
}

func TestBlockedMidSession(t *testing.T) {
	env := newTestEnv(t)

	serviceID := env.createService("Gardening", 60)
	profID := env.registerProfessional("bob", serviceID)
	aliceUser := env.register(gin.H{
		"username": "alice",
		"email":    "alice@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})
	aliceUserID := int64(aliceUser["id"].(float64))

	alice := env.login("alice", "secret123")
	admin := env.login("admin", "admin123")

	// alice's token works
	w := env.do(http.MethodGet, "/api/customer/requests", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// admin blocks alice; her still-valid token is refused on the next call
	w = env.do(http.MethodPost, fmt.Sprintf("/api/admin/users/%d/block", aliceUserID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/customer/requests", alice, gin.H{
		"professional_id": profID,
		"proposed_price":  70.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ACCOUNT_BLOCKED", env.errorCode(w))

	// unblock restores access
	w = env.do(http.MethodPost, fmt.Sprintf("/api/admin/users/%d/unblock", aliceUserID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/customer/requests", alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnverifiedProfessionalCannotBeBooked(t *testing.T) {
	env := newTestEnv(t)

	serviceID := env.createService("Painting", 120)

	// bob registers but is never approved
	bobUser := env.register(gin.H{
		"username":   "bob",
		"email":      "bob@servicehub.test",
		"password":   "secret123",
		"role":       "professional",
		"service_id": serviceID,
	})
	profID := int64(bobUser["professional"].(map[string]any)["id"].(float64))

	env.register(gin.H{
		"username": "alice",
		"email":    "alice@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})
	alice := env.login("alice", "secret123")

	// booking is refused and bob is absent from public search
	w := env.do(http.MethodPost, "/api/customer/requests", alice, gin.H{
		"professional_id": profID,
		"proposed_price":  100.0,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(http.MethodGet, "/api/professionals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.data(w)["professionals"])
}

func TestAPIKeyAuth(t *testing.T) {
	env := newTestEnv(t)
	env.createService("Plumbing", 100)

	// missing key: the documented flat error shape, not the envelope
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	w := httptest.NewRecorder()
	env.app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success": false, "error": 401, "message": "API key is missing."}`, w.Body.String())

	// unknown key
	req = httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Header.Set("x-api-key", "deadbeefdeadbeefdeadbeefdeadbeef")
	w = httptest.NewRecorder()
	env.app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid API key.", body["message"])

	// a valid key reaches the data
	env.register(gin.H{
		"username": "alice",
		"email":    "alice@servicehub.test",
		"password": "secret123",
		"role":     "customer",
	})
	users := repository.NewUserRepository(env.db)
	user, err := users.GetByUsername(t.Context(), "alice")
	require.NoError(t, err)
	require.NoError(t, users.SetAPIKey(t.Context(), user.ID, "0123456789abcdef0123456789abcdef"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Header.Set("x-api-key", "0123456789abcdef0123456789abcdef")
	w = httptest.NewRecorder()
	env.app.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Services []map[string]any `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Services, 1)
	assert.Equal(t, "Plumbing", listing.Services[0]["name"])
}
