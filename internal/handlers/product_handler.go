package handlers

import (
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for products: CRUD, lifecycle
// transitions and the product-level reference price.
type ProductHandler struct {
	productService *services.ProductService
	priceService   *services.PriceService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, priceService *services.PriceService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		priceService:   priceService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/publish", h.HandlePublishProduct)
	productRoutes.Post("/:id/discontinue", h.HandleDiscontinueProduct)
	productRoutes.Put("/:id/status", h.HandleUpdateStatus)
	productRoutes.Post("/:id/enable", h.HandleEnableProduct)
	productRoutes.Post("/:id/disable", h.HandleDisableProduct)
	productRoutes.Post("/:id/price", h.HandleSetPrice)
	productRoutes.Put("/:id/price", h.HandleUpdatePrice)
	productRoutes.Get("/:id/price", h.HandleGetPrice)
	productRoutes.Delete("/:id/price", h.HandleDeletePrice)
}

// VariantRequest is the variant payload accepted inside a product creation
// request and by the variant endpoints.
type VariantRequest struct {
	VariantName      string            `json:"variant_name" validate:"required,max=255"`
	ColorName        string            `json:"color_name" validate:"required,max=100"`
	ColorCode        string            `json:"color_code" validate:"required,len=7"`
	SKUSuffix        string            `json:"sku_suffix" validate:"required,max=50"`
	RangeDetails     map[string]string `json:"range_details"`
	AdditionalImages map[string]string `json:"additional_images"`
	CreatedBy        string            `json:"created_by"`
}

// CreateProductRequest is the request body for product creation.
type CreateProductRequest struct {
	Title           string            `json:"title" validate:"required,max=200"`
	SKU             string            `json:"sku_id" validate:"required,max=255"`
	Description     string            `json:"description"`
	Material        string            `json:"material" validate:"omitempty,max=100"`
	Pattern         string            `json:"pattern" validate:"omitempty,max=100"`
	ColorPrimary    string            `json:"color_primary" validate:"omitempty,max=100"`
	Colors          []string          `json:"colors"`
	WidthEstimateCm *int              `json:"width_estimate_cm"`
	Scale           string            `json:"scale" validate:"omitempty,max=50"`
	SpecialFeatures []string          `json:"special_features"`
	ImageURLs       map[string]string `json:"image_urls"`
	CategoryID      string            `json:"category_id"`
	CreatedBy       string            `json:"created_by"`
	Variants        []VariantRequest  `json:"variants"`
}

func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// HandleCreateProduct creates a new product, optionally with a batch of
// variants. Duplicate variants in the batch are dropped silently,
// first-seen wins.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	input := services.CreateProductInput{
		Title:           req.Title,
		SKU:             req.SKU,
		Description:     req.Description,
		Material:        req.Material,
		Pattern:         req.Pattern,
		ColorPrimary:    req.ColorPrimary,
		Colors:          req.Colors,
		WidthEstimateCm: req.WidthEstimateCm,
		Scale:           req.Scale,
		SpecialFeatures: req.SpecialFeatures,
		ImageURLs:       req.ImageURLs,
		CreatedBy:       req.CreatedBy,
	}
	if req.CategoryID != "" {
		categoryID, err := models.ParseCategoryID(req.CategoryID)
		if err != nil {
			return respondError(c, "Invalid category ID", err)
		}
		input.CategoryID = &categoryID
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, services.VariantInput{
			VariantName:      v.VariantName,
			ColorName:        v.ColorName,
			ColorCode:        v.ColorCode,
			SKUSuffix:        v.SKUSuffix,
			RangeDetails:     v.RangeDetails,
			AdditionalImages: v.AdditionalImages,
			CreatedBy:        v.CreatedBy,
		})
	}

	product, err := h.productService.CreateProduct(input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	product, err := h.productService.GetProduct(id)
	if err != nil {
		log.Printf("Error getting product %s: %v", id, err)
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// UpdateProductRequest is the request body for a partial product update.
type UpdateProductRequest struct {
	Title           *string           `json:"title" validate:"omitempty,max=200"`
	Description     *string           `json:"description"`
	Material        *string           `json:"material" validate:"omitempty,max=100"`
	Pattern         *string           `json:"pattern" validate:"omitempty,max=100"`
	ColorPrimary    *string           `json:"color_primary" validate:"omitempty,max=100"`
	Colors          []string          `json:"colors"`
	WidthEstimateCm *int              `json:"width_estimate_cm"`
	Scale           *string           `json:"scale" validate:"omitempty,max=50"`
	SpecialFeatures []string          `json:"special_features"`
	ImageURLs       map[string]string `json:"image_urls"`
	CategoryID      *string           `json:"category_id"`
}

// HandleUpdateProduct applies a partial update; only supplied fields
// change.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	update := services.ProductUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Material:        req.Material,
		Pattern:         req.Pattern,
		ColorPrimary:    req.ColorPrimary,
		Colors:          req.Colors,
		WidthEstimateCm: req.WidthEstimateCm,
		Scale:           req.Scale,
		SpecialFeatures: req.SpecialFeatures,
		ImageURLs:       req.ImageURLs,
	}
	if req.CategoryID != nil {
		categoryID, err := models.ParseCategoryID(*req.CategoryID)
		if err != nil {
			return respondError(c, "Invalid category ID", err)
		}
		update.CategoryID = &categoryID
	}

	product, err := h.productService.UpdateProduct(id, update)
	if err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product, cascading to its variants, stock
// records and price table.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	deleted, err := h.productService.DeleteProduct(id)
	if err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return respondError(c, "Could not delete product", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", id),
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// HandlePublishProduct publishes a product. A no-op outside DRAFT and
// PENDING_REVIEW.
func (h *ProductHandler) HandlePublishProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	product, err := h.productService.PublishProduct(id)
	if err != nil {
		log.Printf("Error publishing product %s: %v", id, err)
		return respondError(c, "Could not publish product", err)
	}
	return c.JSON(product)
}

// DiscontinueRequest is the request body for discontinuing a product.
type DiscontinueRequest struct {
	Reason string  `json:"reason" validate:"required"`
	Notes  *string `json:"notes"`
}

// HandleDiscontinueProduct discontinues a product with a reason.
func (h *ProductHandler) HandleDiscontinueProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	var req DiscontinueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product, err := h.productService.DiscontinueProduct(id, req.Reason, req.Notes)
	if err != nil {
		log.Printf("Error discontinuing product %s: %v", id, err)
		return respondError(c, "Could not discontinue product", err)
	}
	return c.JSON(product)
}

// StatusUpdateRequest is the request body for a direct status update.
type StatusUpdateRequest struct {
	Status models.ProductStatus `json:"status" validate:"required"`
	Notes  *string              `json:"notes"`
}

// HandleUpdateStatus sets the product status directly. Moving away from
// DISCONTINUED clears the discontinuation fields.
func (h *ProductHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product, err := h.productService.UpdateProductStatus(id, req.Status, req.Notes)
	if err != nil {
		log.Printf("Error updating status of product %s: %v", id, err)
		return respondError(c, "Could not update product status", err)
	}
	return c.JSON(product)
}

// HandleEnableProduct enables a product without altering its status.
func (h *ProductHandler) HandleEnableProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	product, err := h.productService.EnableProduct(id)
	if err != nil {
		log.Printf("Error enabling product %s: %v", id, err)
		return respondError(c, "Could not enable product", err)
	}
	return c.JSON(product)
}

// HandleDisableProduct disables a product without altering its status.
func (h *ProductHandler) HandleDisableProduct(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	product, err := h.productService.DisableProduct(id)
	if err != nil {
		log.Printf("Error disabling product %s: %v", id, err)
		return respondError(c, "Could not disable product", err)
	}
	return c.JSON(product)
}

// PriceRequest is the request body for creating or replacing the price
// table.
type PriceRequest struct {
	WholesalePrice float64 `json:"wholesale_price" validate:"gte=0"`
	RetailPrice    float64 `json:"retail_price" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required,len=3"`
	Actor          string  `json:"created_by"`
}

// HandleSetPrice creates the product's price table at version 1, or bumps
// the existing table's version with the new prices.
func (h *ProductHandler) HandleSetPrice(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	var req PriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	price, err := h.priceService.SetPrice(
		id,
		decimal.NewFromFloat(req.WholesalePrice),
		decimal.NewFromFloat(req.RetailPrice),
		req.Currency,
		req.Actor,
	)
	if err != nil {
		log.Printf("Error setting price for product %s: %v", id, err)
		return respondError(c, "Could not set price", err)
	}
	return c.Status(fiber.StatusCreated).JSON(price)
}

// PriceUpdateRequest is the request body for a partial price update.
type PriceUpdateRequest struct {
	WholesalePrice *float64 `json:"wholesale_price" validate:"omitempty,gte=0"`
	RetailPrice    *float64 `json:"retail_price" validate:"omitempty,gte=0"`
	Currency       *string  `json:"currency" validate:"omitempty,len=3"`
	Actor          string   `json:"modified_by"`
}

// HandleUpdatePrice applies a partial update to the price table,
// incrementing its version by one.
func (h *ProductHandler) HandleUpdatePrice(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	var req PriceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	update := models.PriceTableUpdate{Currency: req.Currency}
	if req.WholesalePrice != nil {
		wholesale := decimal.NewFromFloat(*req.WholesalePrice)
		update.WholesalePrice = &wholesale
	}
	if req.RetailPrice != nil {
		retail := decimal.NewFromFloat(*req.RetailPrice)
		update.RetailPrice = &retail
	}

	price, err := h.priceService.UpdatePrice(id, update, req.Actor)
	if err != nil {
		log.Printf("Error updating price for product %s: %v", id, err)
		return respondError(c, "Could not update price", err)
	}
	return c.JSON(price)
}

// HandleGetPrice retrieves the product's price table.
func (h *ProductHandler) HandleGetPrice(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	price, err := h.priceService.GetPrice(id)
	if err != nil {
		log.Printf("Error getting price for product %s: %v", id, err)
		return respondError(c, "Could not retrieve price", err)
	}
	return c.JSON(price)
}

// HandleDeletePrice removes the product's price table.
func (h *ProductHandler) HandleDeletePrice(c *fiber.Ctx) error {
	id := models.ProductID(c.Params("id"))
	if err := h.priceService.DeletePrice(id); err != nil {
		log.Printf("Error deleting price for product %s: %v", id, err)
		return respondError(c, "Could not delete price", err)
	}
	return c.JSON(fiber.Map{"message": "Price deleted successfully"})
}
