package handler

import (
	"context"
	"net/http"
	"strconv"

	"countrymap/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultLookupLimit = 50
	maxLookupLimit     = 500
)

// LookupHandler exposes the diagnostics journal
type LookupHandler struct {
	repo LookupLister
}

// LookupLister interface for dependency injection
type LookupLister interface {
	ListRecentLookups(context.Context, int) ([]models.Lookup, error)
}

// NewLookupHandler creates a new lookup handler. A nil repo means the journal is disabled.
func NewLookupHandler(repo LookupLister) *LookupHandler {
	return &LookupHandler{repo: repo}
}

// ListLookups handles GET /lookups requests
//
//	@Summary	Recent click lookups, newest first
//	@Tags		diagnostics
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum rows (1-500)"	default(50)
//	@Success	200		{array}		models.Lookup
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/lookups [get]
func (h *LookupHandler) ListLookups(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lookup journal disabled"})
		return
	}

	limit := defaultLookupLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > maxLookupLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
			return
		}
		limit = n
	}

	lookups, err := h.repo.ListRecentLookups(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list lookups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, lookups)
}
