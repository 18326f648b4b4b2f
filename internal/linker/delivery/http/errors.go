package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notion-progress-linker/internal/linker"
	"notion-progress-linker/pkg/response"
)

var errNoRuns = errors.New("no runs recorded yet")

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, linker.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
