package handlers

import (
	"log"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read side of the catalog: the aggregated list
// view.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/catalog", h.HandleListCatalog)
}

// HandleListCatalog returns every product as a summary row with total
// stock, minimum prices and the distinct variant colors.
func (h *CatalogHandler) HandleListCatalog(c *fiber.Ctx) error {
	entries, err := h.catalogService.ListCatalog()
	if err != nil {
		log.Printf("Error listing catalog: %v", err)
		return respondError(c, "Could not retrieve catalog", err)
	}
	return c.JSON(entries)
}
