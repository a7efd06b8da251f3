package handler

import (
	"net/http"
	"strconv"

	"countrymap/internal/models"

	"github.com/gin-gonic/gin"
)

// bindCoordinate reads the lat and lon query parameters. On failure it writes
// a 400 response and returns false. Range is not checked.
func bindCoordinate(c *gin.Context) (models.Coordinate, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return models.Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return models.Coordinate{}, false
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return models.Coordinate{}, false
	}

	return models.Coordinate{Lat: lat, Lon: lon}, true
}
