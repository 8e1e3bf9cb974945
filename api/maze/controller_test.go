package mazeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger "github.com/beka-birhanu/tank-maze/infrastruture/log"
	"github.com/beka-birhanu/tank-maze/maze"
	"github.com/beka-birhanu/tank-maze/service"
	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type levelResponse struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Loopy  bool `json:"loopy"`
	Walls  []struct {
		Orientation string  `json:"orientation"`
		X           float32 `json:"x"`
		Y           float32 `json:"y"`
	} `json:"walls"`
	Spawns []struct {
		Cell maze.Cell `json:"cell"`
	} `json:"spawns"`
}

func newTestEngine(t *testing.T, deletionProb float64, loopy bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := logger.New("TEST", color.FgCyan, io.Discard)
	require.NoError(t, err)

	opts := maze.DefaultOptions()
	opts.DeletionProbability = deletionProb
	opts.Loopy = loopy
	lb, err := service.NewLevelBuilder(maze.NewSource(1), l, &service.LevelOptions{MinSize: 5, MaxSize: 11, Spawns: 2, Maze: opts})
	require.NoError(t, err)

	engine := gin.New()
	NewMazeController(lb).RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func get(engine *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestMazeController(t *testing.T) {
	engine := newTestEngine(t, 1, false)

	t.Run("Sized maze", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?width=3&height=3")
		require.Equal(t, http.StatusOK, w.Code)

		var resp levelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Width)
		assert.Equal(t, 3, resp.Height)
		assert.False(t, resp.Loopy)
		// 3x3 perfect maze: 24 wall-slots, 8 opened.
		assert.Len(t, resp.Walls, 16)
		assert.Len(t, resp.Spawns, 2)
		for _, wall := range resp.Walls {
			assert.Contains(t, []string{"horizontal", "vertical"}, wall.Orientation)
		}
	})

	t.Run("Loopy maze keeps only the border", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?width=4&height=4&loopy=true")
		require.Equal(t, http.StatusOK, w.Code)

		var resp levelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Loopy)
		assert.Len(t, resp.Walls, 16)
	})

	t.Run("Loopy sampled maze", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes?loopy=true")
		require.Equal(t, http.StatusOK, w.Code)

		var resp levelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Loopy)
		assert.Len(t, resp.Walls, 2*(resp.Width+resp.Height))
	})

	t.Run("Sampled size", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes")
		require.Equal(t, http.StatusOK, w.Code)

		var resp levelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, []int{5, 7, 9}, resp.Width)
		assert.Contains(t, []int{5, 7, 9}, resp.Height)
	})

	t.Run("ASCII grid", func(t *testing.T) {
		w := get(engine, "/api/v1/mazes/ascii?width=1&height=1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "###\n# #\n###\n", w.Body.String())
	})

	t.Run("Bad requests", func(t *testing.T) {
		for _, url := range []string{
			"/api/v1/mazes?width=3",
			"/api/v1/mazes?width=0&height=3",
			"/api/v1/mazes?width=500&height=3",
			"/api/v1/mazes?width=abc&height=3",
			"/api/v1/mazes/ascii?height=-2&width=2",
		} {
			w := get(engine, url)
			assert.Equal(t, http.StatusBadRequest, w.Code, url)
			assert.Contains(t, w.Body.String(), "error")
		}
	})
}

func TestMazeControllerConfiguredLoopy(t *testing.T) {
	engine := newTestEngine(t, 1, true)

	decode := func(t *testing.T, url string) levelResponse {
		w := get(engine, url)
		require.Equal(t, http.StatusOK, w.Code)

		var resp levelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("Sized maze follows the configured mode", func(t *testing.T) {
		resp := decode(t, "/api/v1/mazes?width=4&height=4")
		assert.True(t, resp.Loopy)
		assert.Len(t, resp.Walls, 16)
	})

	t.Run("Sampled maze follows the configured mode", func(t *testing.T) {
		resp := decode(t, "/api/v1/mazes")
		assert.True(t, resp.Loopy)
		assert.Len(t, resp.Walls, 2*(resp.Width+resp.Height))
	})

	t.Run("Query overrides the configured mode", func(t *testing.T) {
		resp := decode(t, "/api/v1/mazes?width=3&height=3&loopy=false")
		assert.False(t, resp.Loopy)
		assert.Len(t, resp.Walls, 16)
	})
}
