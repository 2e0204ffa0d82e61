package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// CityController serves the city lookup table.
type CityController struct {
	cities *services.CityService
}

// NewCityController creates a new city controller
func NewCityController(cities *services.CityService) *CityController {
	return &CityController{cities: cities}
}

// List returns every city.
func (cc *CityController) List(c echo.Context) error {
	cities, err := cc.cities.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// Create adds a city.
func (cc *CityController) Create(c echo.Context) error {
	var city domain.City
	if err := c.Bind(&city); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := cc.cities.Add(c.Request().Context(), &city)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update merges partial fields into a city.
func (cc *CityController) Update(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := cc.cities.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a city.
func (cc *CityController) Delete(c echo.Context) error {
	deleted, err := cc.cities.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
