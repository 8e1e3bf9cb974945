package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/tank-maze/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
}

func TestRouterRegistersControllers(t *testing.T) {
	router := NewRouter(Config{
		Addr:        "localhost:0",
		BaseURL:     "/api",
		GinMode:     gin.TestMode,
		Controllers: []i.Controller{pingController{}},
	})

	w := httptest.NewRecorder()
	router.engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
