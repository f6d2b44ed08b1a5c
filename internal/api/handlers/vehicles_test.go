package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/automotiveconsulting/site-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewVehicleHandler(service.NewVehicleService())

	router := gin.New()
	router.GET("/api/v1/vehicles", handler.List)
	router.GET("/api/v1/vehicles/:id", handler.Get)
	return router
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVehiclesList(t *testing.T) {
	router := newVehicleRouter()

	w := getPath(router, "/api/v1/vehicles")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data)
}

func TestVehiclesListFilters(t *testing.T) {
	router := newVehicleRouter()

	w := getPath(router, "/api/v1/vehicles?brand=Toyota&available=true")
	require.Equal(t, http.StatusOK, w.Code)

	w = getPath(router, "/api/v1/vehicles?available=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehiclesGet(t *testing.T) {
	router := newVehicleRouter()

	w := getPath(router, "/api/v1/vehicles/1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = getPath(router, "/api/v1/vehicles/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getPath(router, "/api/v1/vehicles/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
