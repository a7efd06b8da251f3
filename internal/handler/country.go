package handler

import (
	"context"
	"errors"
	"net/http"

	"countrymap/internal/client"
	"countrymap/internal/models"

	"github.com/gin-gonic/gin"
)

// CountryHandler handles country detail requests
type CountryHandler struct {
	service CountryFetcher
}

// CountryFetcher interface for dependency injection
type CountryFetcher interface {
	FetchCountry(context.Context, models.CountryCode) (*models.CountryRecord, error)
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(svc CountryFetcher) *CountryHandler {
	return &CountryHandler{service: svc}
}

// GetCountry handles GET /countries/:code requests
//
//	@Summary	Fetch country metadata by ISO 3166-1 alpha-2 code
//	@Tags		countries
//	@Produce	json
//	@Param		code	path		string	true	"Two letter country code"
//	@Success	200		{object}	models.CountryRecord
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	502		{object}	map[string]string
//	@Router		/countries/{code} [get]
func (h *CountryHandler) GetCountry(c *gin.Context) {
	code, err := models.ParseCountryCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country code"})
		return
	}

	record, err := h.service.FetchCountry(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, client.ErrCountryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "country lookup failed"})
		return
	}

	c.JSON(http.StatusOK, record)
}
