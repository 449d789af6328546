package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/rentdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *gorm.DB
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. db may be nil, in which case
// the health check only reports process liveness.
func NewSystemHandler(db *gorm.DB, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports process liveness and database connectivity
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	dto.Response
//	@Failure		503	{object}	dto.Response
//	@Router			/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	response := HealthResponse{Status: "ok"}

	if h.db != nil {
		response.Database = "ok"
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Status = "degraded"
			response.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(response))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"RentDesk API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
//
//	@Summary		Get system information
//	@Description	Returns basic system information including version and uptime
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	dto.Response
//	@Router			/system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "RentDesk API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
