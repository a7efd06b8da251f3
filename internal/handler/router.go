package handler

import (
	"net/http"

	_ "countrymap/docs" // registers the swagger spec
	"countrymap/internal/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Page           *PageHandler
	Click          *ClickHandler
	ReverseGeocode *ReverseGeocodeHandler
	Country        *CountryHandler
	Lookup         *LookupHandler
}

// NewRouter creates and configures the gin engine.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", h.Page.Index)
	r.GET("/panel", h.Page.Panel)
	r.GET("/click", h.Click.Click)
	r.GET("/reverse-geocode", h.ReverseGeocode.ReverseGeocode)
	r.GET("/countries/:code", h.Country.GetCountry)
	r.GET("/lookups", h.Lookup.ListLookups)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
