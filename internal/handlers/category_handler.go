package handlers

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
	validate        *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// CategoryRequest is the request body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Description)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, "Could not create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetCategory retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id := models.CategoryID(c.Params("id"))
	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		log.Printf("Error getting category %s: %v", id, err)
		return respondError(c, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleUpdateCategory renames a category and replaces its description.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id := models.CategoryID(c.Params("id"))
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		log.Printf("Error updating category %s: %v", id, err)
		return respondError(c, "Could not update category", err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category. Products referencing it keep
// their category ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id := models.CategoryID(c.Params("id"))
	if err := h.categoryService.DeleteCategory(id); err != nil {
		log.Printf("Error deleting category %s: %v", id, err)
		return respondError(c, "Could not delete category", err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
