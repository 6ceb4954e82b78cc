package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/geoauth/internal/interface/http"
)

// GeoModule wires the Country/City reference-data CRUD under /country and
// /city.
type GeoModule struct {
	Countries *handlers.CountryHandler
	Cities    *handlers.CityHandler
}

func NewGeoModule(countries *handlers.CountryHandler, cities *handlers.CityHandler) *GeoModule {
	return &GeoModule{Countries: countries, Cities: cities}
}

func (m *GeoModule) Register(rg *gin.RouterGroup) {
	country := rg.Group("/country")
	country.GET("/getAll", m.Countries.GetAll)
	country.GET("/get/:id", m.Countries.GetByID)
	country.POST("/create", m.Countries.Create)
	country.PATCH("/update/:id", m.Countries.Update)
	country.DELETE("/delete/:id", m.Countries.Delete)

	city := rg.Group("/city")
	city.GET("/getAll", m.Cities.GetAll)
	city.GET("/get/:id", m.Cities.GetByID)
	city.POST("/create", m.Cities.Create)
	city.PATCH("/update/:id", m.Cities.Update)
	city.DELETE("/delete/:id", m.Cities.Delete)
}
