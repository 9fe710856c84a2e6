package handlers

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VariantHandler handles HTTP requests for product variants.
type VariantHandler struct {
	variantService *services.VariantService
	validate       *validator.Validate
}

// NewVariantHandler creates a new VariantHandler.
func NewVariantHandler(variantService *services.VariantService) *VariantHandler {
	return &VariantHandler{
		variantService: variantService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the variant routes with the Fiber app.
func (h *VariantHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products/:id/variants", h.HandleCreateVariant)
	router.Get("/products/:id/variants", h.HandleListVariants)

	variantRoutes := router.Group("/variants")
	variantRoutes.Get("/:variantId", h.HandleGetVariant)
	variantRoutes.Put("/:variantId", h.HandleUpdateVariant)
	variantRoutes.Delete("/:variantId", h.HandleDeleteVariant)
}

// HandleCreateVariant attaches a new variant to an existing product.
func (h *VariantHandler) HandleCreateVariant(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	var req VariantRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create variant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	variant, err := h.variantService.CreateVariant(productID, services.VariantInput{
		VariantName:      req.VariantName,
		ColorName:        req.ColorName,
		ColorCode:        req.ColorCode,
		SKUSuffix:        req.SKUSuffix,
		RangeDetails:     req.RangeDetails,
		AdditionalImages: req.AdditionalImages,
		CreatedBy:        req.CreatedBy,
	})
	if err != nil {
		log.Printf("Error creating variant for product %s: %v", productID, err)
		return respondError(c, "Could not create variant", err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

// HandleListVariants returns all variants of a product, each with its
// per-partner stock records.
func (h *VariantHandler) HandleListVariants(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	variants, err := h.variantService.ListVariantsWithStock(productID)
	if err != nil {
		log.Printf("Error listing variants for product %s: %v", productID, err)
		return respondError(c, "Could not retrieve variants", err)
	}
	return c.JSON(variants)
}

// HandleGetVariant retrieves a single variant by its ID.
func (h *VariantHandler) HandleGetVariant(c *fiber.Ctx) error {
	id := models.VariantID(c.Params("variantId"))
	variant, err := h.variantService.GetVariant(id)
	if err != nil {
		log.Printf("Error getting variant %s: %v", id, err)
		return respondError(c, "Could not retrieve variant", err)
	}
	return c.JSON(variant)
}

// UpdateVariantRequest is the request body for a partial variant update.
type UpdateVariantRequest struct {
	VariantName      *string           `json:"variant_name" validate:"omitempty,max=255"`
	ColorName        *string           `json:"color_name" validate:"omitempty,max=100"`
	ColorCode        *string           `json:"color_code" validate:"omitempty,len=7"`
	SKUSuffix        *string           `json:"sku_suffix" validate:"omitempty,max=50"`
	RangeDetails     map[string]string `json:"range_details"`
	AdditionalImages map[string]string `json:"additional_images"`
	IsActive         *bool             `json:"is_active"`
}

// HandleUpdateVariant applies a partial update to a variant.
func (h *VariantHandler) HandleUpdateVariant(c *fiber.Ctx) error {
	id := models.VariantID(c.Params("variantId"))
	var req UpdateVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	variant, err := h.variantService.UpdateVariant(id, services.VariantUpdate{
		VariantName:      req.VariantName,
		ColorName:        req.ColorName,
		ColorCode:        req.ColorCode,
		SKUSuffix:        req.SKUSuffix,
		RangeDetails:     req.RangeDetails,
		AdditionalImages: req.AdditionalImages,
		IsActive:         req.IsActive,
	})
	if err != nil {
		log.Printf("Error updating variant %s: %v", id, err)
		return respondError(c, "Could not update variant", err)
	}
	return c.JSON(variant)
}

// HandleDeleteVariant removes a variant together with its stock records.
func (h *VariantHandler) HandleDeleteVariant(c *fiber.Ctx) error {
	id := models.VariantID(c.Params("variantId"))
	if err := h.variantService.DeleteVariant(id); err != nil {
		log.Printf("Error deleting variant %s: %v", id, err)
		return respondError(c, "Could not delete variant", err)
	}
	return c.JSON(fiber.Map{"message": "Variant deleted successfully"})
}
