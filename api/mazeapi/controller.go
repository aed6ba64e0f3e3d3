package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/beka-birhanu/mazeraster/encoder"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze creation and rendering.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeInfo)
		mazes.GET("/:ID/image", mc.image)
		mazes.GET("/:ID/grid", mc.grid)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", mc.create)
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Create(ctx, request.Options())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

// mazeInfo returns the stored maze record.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	m, err := mc.mazeService.ByID(ctx, ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// image returns the rendered maze in the format given by the format query parameter.
func (mc *MazeController) image(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	data, enc, err := mc.mazeService.Render(ctx, ID, ctx.Query("format"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, enc.ContentType(), data)
}

// grid returns the cell connectivity of the maze.
func (mc *MazeController) grid(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	g, err := mc.mazeService.Grid(ctx, ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &GridResponse{
		CellsX: g.CellsX,
		CellsY: g.CellsY,
		Edges:  g.Edges(),
		Cells:  g.Cells,
	})
}

// ascii returns a text drawing of the maze.
func (mc *MazeController) ascii(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	g, err := mc.mazeService.Grid(ctx, ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, g.String())
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	switch {
	case errors.Is(err, mazegen.ErrInvalidOptions), errors.Is(err, encoder.ErrUnknownFormat):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while processing maze"})
	}
}
