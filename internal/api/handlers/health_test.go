package handlers_test

import (
	"net/http"
	"testing"

	"seating-planner-backend/internal/api/handlers"
	"seating-planner-backend/internal/auth"
	"seating-planner-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB returns a handle whose pings always fail
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestHealthHandler_Live(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(unreachableDB(t), nil)
	httpSuite.Router.GET("/health/live", handler.Live)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(unreachableDB(t), nil)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "error: ")
	assert.Equal(t, "in-memory", response.Services["sessions"])

	recorder = httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])
}

func TestHealthHandler_SessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := auth.NewRedisSessionStore(mr.Addr(), "", 0)
	defer store.Close()

	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(unreachableDB(t), store)
	httpSuite.Router.GET("/health", handler.Health)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "healthy", response.Services["sessions"])

	mr.Close()
	recorder = httpSuite.MakeRequest(http.MethodGet, "/health", nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Contains(t, response.Services["sessions"], "error: ")
}
