package handler

import (
	"context"
	"errors"
	"net/http"

	"countrymap/internal/models"
	"countrymap/internal/service"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service CountryCodeResolver
}

// CountryCodeResolver interface for dependency injection
type CountryCodeResolver interface {
	ResolveCountryCode(context.Context, float64, float64) (models.CountryCode, error)
}

// CountryCodeResponse is the body of a successful reverse geocode.
type CountryCodeResponse struct {
	CountryCode models.CountryCode `json:"country_code"`
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc CountryCodeResolver) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests
//
//	@Summary	Resolve a coordinate to a country code
//	@Tags		geocoding
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude in degrees"
//	@Param		lon	query		number	true	"Longitude in degrees"
//	@Success	200	{object}	CountryCodeResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	502	{object}	map[string]string
//	@Router		/reverse-geocode [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	coordinate, ok := bindCoordinate(c)
	if !ok {
		return
	}

	code, err := h.service.ResolveCountryCode(c.Request.Context(), coordinate.Lat, coordinate.Lon)
	if err != nil {
		if errors.Is(err, service.ErrNoCountryCode) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no country found at the specified coordinates"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "reverse geocoding failed"})
		return
	}

	c.JSON(http.StatusOK, CountryCodeResponse{CountryCode: code})
}
