package handler

import (
	"html/template"
	"net/http"
	"time"

	"countrymap/internal/models"
	"countrymap/internal/render"
	"countrymap/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PageTitle is the heading of the map page.
const PageTitle = "World Map Application"

// PageHandler serves the map page and the details panel
type PageHandler struct {
	selection SelectionReader
}

// SelectionReader exposes the currently selected country
type SelectionReader interface {
	Get() (models.CountryRecord, time.Time, bool)
}

// NewPageHandler creates a new page handler
func NewPageHandler(selection SelectionReader) *PageHandler {
	return &PageHandler{selection: selection}
}

// Index handles GET / requests
func (h *PageHandler) Index(c *gin.Context) {
	panel, ok := h.panel(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{
		"Title": PageTitle,
		"Panel": template.HTML(panel),
	})
}

// Panel handles GET /panel requests
//
//	@Summary	Details panel for the selected country
//	@Tags		map
//	@Produce	html
//	@Success	200	{string}	string
//	@Router		/panel [get]
func (h *PageHandler) Panel(c *gin.Context) {
	panel, ok := h.panel(c)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(panel))
}

func (h *PageHandler) panel(c *gin.Context) (string, bool) {
	var selected *models.CountryRecord
	if record, _, ok := h.selection.Get(); ok {
		selected = &record
	}

	panel, err := render.Panel(selected)
	if err != nil {
		log.Error().Err(err).Msg("failed to render panel")
		c.String(http.StatusInternalServerError, "internal server error")
		return "", false
	}
	return panel, true
}
