package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// LeadController serves lead intake and admin reporting.
type LeadController struct {
	leads *services.LeadService
}

// NewLeadController creates a new lead controller
func NewLeadController(leads *services.LeadService) *LeadController {
	return &LeadController{leads: leads}
}

// Submit is the public inquiry endpoint.
func (lc *LeadController) Submit(c echo.Context) error {
	var lead domain.Lead
	if err := c.Bind(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := lc.leads.Submit(c.Request().Context(), &lead)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List returns leads, optionally filtered by city or source.
func (lc *LeadController) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		leads []*domain.Lead
		err   error
	)
	switch {
	case c.QueryParam("city") != "":
		leads, err = lc.leads.ListByCity(ctx, c.QueryParam("city"))
	case c.QueryParam("source") != "":
		leads, err = lc.leads.ListBySource(ctx, c.QueryParam("source"))
	default:
		leads, err = lc.leads.ListAll(ctx)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, leads)
}

// Export downloads all leads as a CSV file.
func (lc *LeadController) Export(c echo.Context) error {
	leads, err := lc.leads.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="leads.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(services.ExportLeadsCSV(leads)))
}

// Delete removes a lead.
func (lc *LeadController) Delete(c echo.Context) error {
	deleted, err := lc.leads.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
