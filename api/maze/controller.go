package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/tank-maze/domain"
	"github.com/beka-birhanu/tank-maze/maze"
	"github.com/beka-birhanu/tank-maze/service/i"
	"github.com/gin-gonic/gin"
)

var ErrPartialSize = errors.New("width and height must be given together")

// MazeController serves generated levels.
type MazeController struct {
	levelBuilder i.LevelBuilder
}

// NewMazeController initializes a MazeController.
func NewMazeController(lb i.LevelBuilder) *MazeController {
	return &MazeController{
		levelBuilder: lb,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.level)
		mazes.GET("/ascii", mc.ascii)
	}
}

// level responds with the walls and spawns of a new level.
func (mc *MazeController) level(ctx *gin.Context) {
	level, status, err := mc.build(ctx)
	if err != nil {
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, level)
}

// ascii responds with the grid of a new level as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	level, status, err := mc.build(ctx)
	if err != nil {
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.String(http.StatusOK, level.Maze.String())
}

func (mc *MazeController) build(ctx *gin.Context) (*dmn.Level, int, error) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		return nil, http.StatusBadRequest, err
	}

	if (request.Width == 0) != (request.Height == 0) {
		return nil, http.StatusBadRequest, ErrPartialSize
	}

	var (
		level *dmn.Level
		err   error
	)
	if request.Width == 0 {
		level, err = mc.levelBuilder.Build(request.Loopy)
	} else {
		level, err = mc.levelBuilder.BuildSized(request.Width, request.Height, request.Loopy)
	}

	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, errors.New("error while generating maze")
	}
	return level, http.StatusOK, nil
}
