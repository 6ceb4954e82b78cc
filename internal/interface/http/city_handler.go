package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/geoauth/internal/application"
	"github.com/oksasatya/geoauth/pkg/response"
	"github.com/oksasatya/geoauth/pkg/validation"
)

type CityHandler struct {
	Svc    *application.GeoService
	Logger *logrus.Logger
}

func NewCityHandler(svc *application.GeoService, logger *logrus.Logger) *CityHandler {
	return &CityHandler{Svc: svc, Logger: logger}
}

func (h *CityHandler) fail(c *gin.Context, err error) {
	var unknown *application.UnknownCountryError
	switch {
	case errors.As(err, &unknown):
		response.Fail(c, http.StatusBadRequest, "unknown country id",
			gin.H{"available_countries": unknown.Available})
	case errors.Is(err, application.ErrCityNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("dependency failure")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}

type cityRequest struct {
	Name      string `json:"name" binding:"required"`
	CountryID int64  `json:"countryId" binding:"required"`
}

// Create POST /city/create
func (h *CityHandler) Create(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.Fail(c, http.StatusBadRequest, "city name and countryId are required", validation.ToDetails(err))
		return
	}
	city, err := h.Svc.CreateCity(c.Request.Context(), req.Name, req.CountryID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, city, "city created")
}

// GetAll GET /city/getAll
func (h *CityHandler) GetAll(c *gin.Context) {
	cities, err := h.Svc.GetAllCities(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cities, "cities")
}

// GetByID GET /city/get/:id
func (h *CityHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	city, err := h.Svc.GetCityByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, city, "city")
}

// Update PATCH /city/update/:id
func (h *CityHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.Fail(c, http.StatusBadRequest, "city name and countryId are required", validation.ToDetails(err))
		return
	}
	city, err := h.Svc.UpdateCity(c.Request.Context(), id, req.Name, req.CountryID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, city, "city updated")
}

// Delete DELETE /city/delete/:id
func (h *CityHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCity(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "city deleted")
}
