package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// PropertyController serves the city-partitioned property catalog.
type PropertyController struct {
	catalog *services.CatalogService
}

// NewPropertyController creates a new property controller
func NewPropertyController(catalog *services.CatalogService) *PropertyController {
	return &PropertyController{catalog: catalog}
}

// List returns every property across all cities.
func (pc *PropertyController) List(c echo.Context) error {
	properties, err := pc.catalog.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// ListByCity returns one city partition.
func (pc *PropertyController) ListByCity(c echo.Context) error {
	properties, err := pc.catalog.ListByCity(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// Get returns one property by id.
func (pc *PropertyController) Get(c echo.Context) error {
	property, err := pc.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// Create adds a property to a city partition.
func (pc *PropertyController) Create(c echo.Context) error {
	var property domain.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := pc.catalog.Add(c.Request().Context(), c.Param("slug"), &property)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update merges partial fields into a property.
func (pc *PropertyController) Update(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := pc.catalog.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a property. Deleting an unknown id returns deleted=false.
func (pc *PropertyController) Delete(c echo.Context) error {
	deleted, err := pc.catalog.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
