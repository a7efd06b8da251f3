package handler

import (
	"context"
	"net/http"

	"countrymap/internal/models"
	"countrymap/internal/service"

	"github.com/gin-gonic/gin"
)

// ClickHandler runs the click pipeline for the map page
type ClickHandler struct {
	service Clicker
}

// Clicker interface for dependency injection
type Clicker interface {
	Click(context.Context, models.Coordinate) (*service.ClickResult, error)
}

// NewClickHandler creates a new click handler
func NewClickHandler(svc Clicker) *ClickHandler {
	return &ClickHandler{service: svc}
}

// Click handles GET /click requests. Pipeline failures answer 204 with no
// body so the page leaves the popup and panel as they were.
//
//	@Summary	Select the country at a clicked coordinate
//	@Tags		map
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude in degrees"
//	@Param		lon	query		number	true	"Longitude in degrees"
//	@Success	200	{object}	service.ClickResult
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Router		/click [get]
func (h *ClickHandler) Click(c *gin.Context) {
	coordinate, ok := bindCoordinate(c)
	if !ok {
		return
	}

	result, err := h.service.Click(c.Request.Context(), coordinate)
	if err != nil {
		// Already logged by the pipeline.
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, result)
}
