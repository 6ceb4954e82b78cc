package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/geoauth/internal/application"
	"github.com/oksasatya/geoauth/pkg/response"
	"github.com/oksasatya/geoauth/pkg/validation"
)

type CountryHandler struct {
	Svc    *application.GeoService
	Logger *logrus.Logger
}

func NewCountryHandler(svc *application.GeoService, logger *logrus.Logger) *CountryHandler {
	return &CountryHandler{Svc: svc, Logger: logger}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *CountryHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCountryExists):
		response.Fail(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrCountryNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("dependency failure")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}

type countryRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create POST /country/create
func (h *CountryHandler) Create(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.Fail(c, http.StatusBadRequest, "country name is required", validation.ToDetails(err))
		return
	}
	country, err := h.Svc.CreateCountry(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, country, "country created")
}

// GetAll GET /country/getAll
func (h *CountryHandler) GetAll(c *gin.Context) {
	countries, err := h.Svc.GetAllCountries(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, countries, "countries")
}

// GetByID GET /country/get/:id
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	country, err := h.Svc.GetCountryByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, country, "country")
}

// Update PATCH /country/update/:id
func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.Fail(c, http.StatusBadRequest, "country name is required", validation.ToDetails(err))
		return
	}
	country, err := h.Svc.UpdateCountry(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, country, "country updated")
}

// Delete DELETE /country/delete/:id
func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCountry(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "country deleted")
}
