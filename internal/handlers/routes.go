package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// Services bundles everything the route table needs.
type Services struct {
	Health       *services.HealthService
	Auth         *services.AuthService
	Catalog      *services.CatalogService
	Leads        *services.LeadService
	Testimonials *services.TestimonialService
	Resale       *services.ResaleService
	Cities       *services.CityService
}

// RegisterRoutes mounts every endpoint on e.
func RegisterRoutes(e *echo.Echo, svcs Services) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, svcs.Health.Check(c.Request().Context()))
	})

	admin := AdminAuth(svcs.Auth)
	api := e.Group("/api/v1")

	authCtl := NewAuthController(svcs.Auth)
	api.POST("/auth/login", authCtl.Login)
	api.GET("/auth/me", authCtl.Me, admin)

	propertyCtl := NewPropertyController(svcs.Catalog)
	api.GET("/properties", propertyCtl.List)
	api.GET("/properties/city/:slug", propertyCtl.ListByCity)
	api.GET("/properties/:id", propertyCtl.Get)
	api.POST("/properties/city/:slug", propertyCtl.Create, admin)
	api.PUT("/properties/:id", propertyCtl.Update, admin)
	api.DELETE("/properties/:id", propertyCtl.Delete, admin)

	leadCtl := NewLeadController(svcs.Leads)
	api.POST("/leads", leadCtl.Submit)
	api.GET("/leads", leadCtl.List, admin)
	api.GET("/leads/export", leadCtl.Export, admin)
	api.DELETE("/leads/:id", leadCtl.Delete, admin)

	testimonialCtl := NewTestimonialController(svcs.Testimonials)
	api.GET("/testimonials", testimonialCtl.List)
	api.POST("/testimonials", testimonialCtl.Create, admin)
	api.PUT("/testimonials/:id", testimonialCtl.Update, admin)
	api.DELETE("/testimonials/:id", testimonialCtl.Delete, admin)

	resaleCtl := NewResaleController(svcs.Resale)
	api.POST("/resale", resaleCtl.Submit)
	api.GET("/resale/public", resaleCtl.ListPublic)
	api.GET("/resale", resaleCtl.List, admin)
	api.POST("/resale/:id/approve", resaleCtl.Approve, admin)
	api.POST("/resale/:id/reject", resaleCtl.Reject, admin)
	api.POST("/resale/:id/status", resaleCtl.SetStatus, admin)
	api.PUT("/resale/:id", resaleCtl.Update, admin)
	api.DELETE("/resale/:id", resaleCtl.Delete, admin)

	cityCtl := NewCityController(svcs.Cities)
	api.GET("/cities", cityCtl.List)
	api.POST("/cities", cityCtl.Create, admin)
	api.PUT("/cities/:id", cityCtl.Update, admin)
	api.DELETE("/cities/:id", cityCtl.Delete, admin)
}
