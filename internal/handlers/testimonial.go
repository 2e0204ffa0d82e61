package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// TestimonialController serves testimonials.
type TestimonialController struct {
	testimonials *services.TestimonialService
}

// NewTestimonialController creates a new testimonial controller
func NewTestimonialController(testimonials *services.TestimonialService) *TestimonialController {
	return &TestimonialController{testimonials: testimonials}
}

// List returns every testimonial.
func (tc *TestimonialController) List(c echo.Context) error {
	testimonials, err := tc.testimonials.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create adds a testimonial.
func (tc *TestimonialController) Create(c echo.Context) error {
	var testimonial domain.Testimonial
	if err := c.Bind(&testimonial); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := tc.testimonials.Add(c.Request().Context(), &testimonial)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update merges partial fields into a testimonial.
func (tc *TestimonialController) Update(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := tc.testimonials.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a testimonial.
func (tc *TestimonialController) Delete(c echo.Context) error {
	deleted, err := tc.testimonials.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
