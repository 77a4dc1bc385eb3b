package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// ServiceHandler serves the read-only directory of family-oriented local
// services.
type ServiceHandler struct {
	serviceRepository repositories.LocalServiceRepository
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceRepo repositories.LocalServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepository: serviceRepo}
}

// RegisterServiceRoutes registers local service routes
func (h *ServiceHandler) RegisterServiceRoutes(g *echo.Group) {
	g.GET("/services", h.GetServices)
	g.GET("/services/:id", h.GetService)
	g.POST("/services/seed", h.SeedServices)
}

// GetServices lists services filtered by any combination of category, city
// and state.
func (h *ServiceHandler) GetServices(c echo.Context) error {
	category := models.ServiceCategory(c.QueryParam("category"))
	services, err := h.serviceRepository.Find(category, c.QueryParam("city"), c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"services": services})
}

// GetService returns one directory entry.
func (h *ServiceHandler) GetService(c echo.Context) error {
	service, err := h.serviceRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}
	return c.JSON(http.StatusOK, service)
}

// SeedServices loads a starter directory once. Safe to retry.
func (h *ServiceHandler) SeedServices(c echo.Context) error {
	count, err := h.serviceRepository.Count()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return c.JSON(http.StatusOK, echo.Map{"seeded": 0, "message": "Services already seeded"})
	}

	samples := []models.LocalService{
		{
			Name:        "Happy Kids Pediatrics",
			Category:    models.ServicePediatrician,
			Description: "Pediatric clinic with same-day appointments and weekend hours.",
			Address:     "Av. Paulista 1000",
			Phone:       "+55 11 5555-0101",
			Location:    models.Location{City: "São Paulo", State: "SP"},
			Rating:      4.8,
		},
		{
			Name:        "Little Sprouts Preschool",
			Category:    models.ServiceSchool,
			Description: "Bilingual preschool for children aged 2 to 5.",
			Address:     "Rua Augusta 250",
			Website:     "https://littlesprouts.example.com",
			Location:    models.Location{City: "São Paulo", State: "SP"},
			Rating:      4.6,
		},
		{
			Name:        "Ibirapuera Playground",
			Category:    models.ServicePark,
			Description: "Large shaded playground with stroller-friendly paths.",
			Address:     "Parque Ibirapuera, Gate 3",
			Location:    models.Location{City: "São Paulo", State: "SP"},
			Rating:      4.9,
		},
		{
			Name:        "Baby & Me Store",
			Category:    models.ServiceStore,
			Description: "Clothing, toys and gear for newborns and toddlers.",
			Address:     "Rua Oscar Freire 80",
			Phone:       "+55 11 5555-0303",
			Location:    models.Location{City: "Campinas", State: "SP"},
			Rating:      4.4,
		},
	}
	for i := range samples {
		if err := h.serviceRepository.Create(&samples[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"seeded": len(samples)})
}
