package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CanvasController serves the public rendering payload: canvas dimensions,
// zoom settings and the enabled hotspots ordered by sequence.
type CanvasController struct {
	payloads PayloadReader
}

func NewCanvasController(payloads PayloadReader) *CanvasController {
	return &CanvasController{payloads: payloads}
}

func (ctrl *CanvasController) Get(c *gin.Context) {
	doc, err := ctrl.payloads.Payload(true)
	if err != nil {
		respondInternalError(c, err, "fetching canvas data")
		return
	}
	c.JSON(http.StatusOK, doc)
}
