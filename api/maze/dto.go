// Package mazeapi provides the HTTP surface for previewing generated mazes.
package mazeapi

// MazeRequest selects the maze to generate.
// Without width and height the service samples an odd size itself.
// Without loopy the configured mode applies.
type MazeRequest struct {
	Width  int   `form:"width" binding:"omitempty,min=1,max=101"`
	Height int   `form:"height" binding:"omitempty,min=1,max=101"`
	Loopy  *bool `form:"loopy"`
}
