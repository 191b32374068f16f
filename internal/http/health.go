package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks the backing store's connectivity.
type Pinger interface {
	Ping() error
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type HealthController struct {
	pinger  Pinger
	version string
}

func NewHealthController(pinger Pinger, version string) *HealthController {
	return &HealthController{
		pinger:  pinger,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Version: h.version})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}
