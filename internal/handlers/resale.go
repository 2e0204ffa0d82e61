package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// ResaleController serves the resale listing workflow.
type ResaleController struct {
	resale *services.ResaleService
}

// NewResaleController creates a new resale controller
func NewResaleController(resale *services.ResaleService) *ResaleController {
	return &ResaleController{resale: resale}
}

// Submit is the public listing submission endpoint.
func (rc *ResaleController) Submit(c echo.Context) error {
	var property domain.ResaleProperty
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := rc.resale.Submit(c.Request().Context(), &property)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListPublic returns listings visible on the public site (approved AND active).
func (rc *ResaleController) ListPublic(c echo.Context) error {
	listings, err := rc.resale.ListPubliclyVisible(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

// List is the admin view, optionally filtered by approval status.
func (rc *ResaleController) List(c echo.Context) error {
	ctx := c.Request().Context()

	if status := c.QueryParam("status"); status != "" {
		listings, err := rc.resale.ListByApprovalStatus(ctx, domain.ApprovalStatus(status))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, listings)
	}

	listings, err := rc.resale.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

type approveRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// Approve transitions a listing to approved.
func (rc *ResaleController) Approve(c echo.Context) error {
	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := rc.resale.Approve(c.Request().Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

type rejectRequest struct {
	Reason     string `json:"reason"`
	AdminNotes string `json:"admin_notes"`
}

// Reject transitions a listing to rejected with a mandatory reason.
func (rc *ResaleController) Reject(c echo.Context) error {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := rc.resale.Reject(c.Request().Context(), c.Param("id"), req.Reason, req.AdminNotes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

type listingStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves an approved listing between active, sold and on-hold.
func (rc *ResaleController) SetStatus(c echo.Context) error {
	var req listingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := rc.resale.SetListingStatus(c.Request().Context(), c.Param("id"), domain.ListingStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Update merges partial fields into a listing (admin edit, any state).
func (rc *ResaleController) Update(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := rc.resale.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete permanently removes a listing.
func (rc *ResaleController) Delete(c echo.Context) error {
	deleted, err := rc.resale.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
