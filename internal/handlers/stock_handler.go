package handlers

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// StockHandler handles HTTP requests for inventory: per-partner stock
// records on variants and the product-level stock ledger.
type StockHandler struct {
	stockService *services.StockService
	validate     *validator.Validate
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the stock routes with the Fiber app.
func (h *StockHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/variants/:variantId/stock", h.HandleGetVariantStock)
	router.Post("/variants/:variantId/stock/:partnerId", h.HandleAddStock)
	router.Put("/variants/:variantId/stock/:partnerId", h.HandleUpdateStock)
	router.Delete("/stock/:stockId", h.HandleDeleteStock)

	router.Post("/products/:id/stock", h.HandleCreateProductStock)
	router.Put("/products/:id/stock", h.HandleUpdateProductStock)
	router.Get("/products/:id/stock", h.HandleGetProductStock)
}

// AddStockRequest is the request body for creating a partner's stock
// record on a variant.
type AddStockRequest struct {
	AvailableQuantity int     `json:"available_quantity" validate:"gte=0"`
	RetailPrice       float64 `json:"retail_price" validate:"gte=0"`
	WholesalePrice    float64 `json:"wholesale_price" validate:"gte=0"`
	Currency          string  `json:"currency" validate:"omitempty,len=3"`
	PartnerSKU        string  `json:"partner_sku" validate:"omitempty,max=255"`
}

// HandleGetVariantStock returns all stock records held against a variant.
func (h *StockHandler) HandleGetVariantStock(c *fiber.Ctx) error {
	variantID := models.VariantID(c.Params("variantId"))
	records, err := h.stockService.GetStockForVariant(variantID)
	if err != nil {
		log.Printf("Error getting stock for variant %s: %v", variantID, err)
		return respondError(c, "Could not retrieve stock records", err)
	}
	return c.JSON(records)
}

// HandleAddStock creates a stock record for the (variant, partner) pair.
// A pair that already holds a record is rejected with 409.
func (h *StockHandler) HandleAddStock(c *fiber.Ctx) error {
	variantID := models.VariantID(c.Params("variantId"))
	partnerID := models.PartnerID(c.Params("partnerId"))
	var req AddStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add stock request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	record, err := h.stockService.AddStock(variantID, partnerID, services.AddStockInput{
		AvailableQuantity: req.AvailableQuantity,
		RetailPrice:       decimal.NewFromFloat(req.RetailPrice),
		WholesalePrice:    decimal.NewFromFloat(req.WholesalePrice),
		Currency:          req.Currency,
		PartnerSKU:        req.PartnerSKU,
	})
	if err != nil {
		log.Printf("Error adding stock for variant %s, partner %s: %v", variantID, partnerID, err)
		return respondError(c, "Could not add stock", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateStockRequest is the request body for a partial update of a
// partner's stock record.
type UpdateStockRequest struct {
	QuantityAvailable *int     `json:"available_quantity" validate:"omitempty,gte=0"`
	QuantityReserved  *int     `json:"reserved_quantity" validate:"omitempty,gte=0"`
	ReorderLevel      *int     `json:"reorder_level" validate:"omitempty,gte=0"`
	ReorderQuantity   *int     `json:"reorder_quantity" validate:"omitempty,gte=0"`
	RetailPrice       *float64 `json:"retail_price" validate:"omitempty,gte=0"`
	WholesalePrice    *float64 `json:"wholesale_price" validate:"omitempty,gte=0"`
	Currency          *string  `json:"currency" validate:"omitempty,len=3"`
	PartnerSKU        *string  `json:"partner_sku" validate:"omitempty,max=255"`
}

// HandleUpdateStock applies a partial update to the stock record a
// partner holds for a variant.
func (h *StockHandler) HandleUpdateStock(c *fiber.Ctx) error {
	variantID := models.VariantID(c.Params("variantId"))
	partnerID := models.PartnerID(c.Params("partnerId"))
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	update := models.StockRecordUpdate{
		QuantityAvailable: req.QuantityAvailable,
		QuantityReserved:  req.QuantityReserved,
		ReorderLevel:      req.ReorderLevel,
		ReorderQuantity:   req.ReorderQuantity,
		Currency:          req.Currency,
		PartnerSKU:        req.PartnerSKU,
	}
	if req.RetailPrice != nil {
		retail := decimal.NewFromFloat(*req.RetailPrice)
		update.RetailPrice = &retail
	}
	if req.WholesalePrice != nil {
		wholesale := decimal.NewFromFloat(*req.WholesalePrice)
		update.WholesalePrice = &wholesale
	}

	record, err := h.stockService.UpdateStock(variantID, partnerID, update)
	if err != nil {
		log.Printf("Error updating stock for variant %s, partner %s: %v", variantID, partnerID, err)
		return respondError(c, "Could not update stock", err)
	}
	return c.JSON(record)
}

// HandleDeleteStock removes a single stock record by its ID.
func (h *StockHandler) HandleDeleteStock(c *fiber.Ctx) error {
	id := c.Params("stockId")
	if err := h.stockService.DeleteStock(id); err != nil {
		log.Printf("Error deleting stock record %s: %v", id, err)
		return respondError(c, "Could not delete stock record", err)
	}
	return c.JSON(fiber.Map{"message": "Stock record deleted successfully"})
}

// ProductStockRequest is the request body for creating the product-level
// stock ledger.
type ProductStockRequest struct {
	CurrentStock      int    `json:"current_stock" validate:"gte=0"`
	ReservedStock     int    `json:"reserved_stock" validate:"gte=0"`
	ReorderLevel      int    `json:"reorder_level" validate:"gte=0"`
	MaxStockLevel     int    `json:"max_stock_level" validate:"gte=0"`
	UnitOfMeasure     string `json:"unit_of_measure" validate:"omitempty,max=50"`
	WarehouseLocation string `json:"warehouse_location" validate:"omitempty,max=255"`
	BatchNumber       string `json:"batch_number" validate:"omitempty,max=100"`
	UpdatedBy         string `json:"updated_by"`
}

// HandleCreateProductStock creates the product-level stock ledger row.
func (h *StockHandler) HandleCreateProductStock(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	var req ProductStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	stock, err := h.stockService.CreateProductStock(productID, services.ProductStockInput{
		CurrentStock:      req.CurrentStock,
		ReservedStock:     req.ReservedStock,
		ReorderLevel:      req.ReorderLevel,
		MaxStockLevel:     req.MaxStockLevel,
		UnitOfMeasure:     req.UnitOfMeasure,
		WarehouseLocation: req.WarehouseLocation,
		BatchNumber:       req.BatchNumber,
		UpdatedBy:         req.UpdatedBy,
	})
	if err != nil {
		log.Printf("Error creating product stock for %s: %v", productID, err)
		return respondError(c, "Could not create product stock", err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

// ProductStockUpdateRequest is the request body for a partial ledger
// update.
type ProductStockUpdateRequest struct {
	CurrentStock      *int    `json:"current_stock" validate:"omitempty,gte=0"`
	ReservedStock     *int    `json:"reserved_stock" validate:"omitempty,gte=0"`
	ReorderLevel      *int    `json:"reorder_level" validate:"omitempty,gte=0"`
	MaxStockLevel     *int    `json:"max_stock_level" validate:"omitempty,gte=0"`
	UnitOfMeasure     *string `json:"unit_of_measure" validate:"omitempty,max=50"`
	WarehouseLocation *string `json:"warehouse_location" validate:"omitempty,max=255"`
	BatchNumber       *string `json:"batch_number" validate:"omitempty,max=100"`
	UpdatedBy         string  `json:"updated_by"`
}

// HandleUpdateProductStock applies a partial update to the product-level
// ledger; the available figure is recomputed from current - reserved.
func (h *StockHandler) HandleUpdateProductStock(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	var req ProductStockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	stock, err := h.stockService.UpdateProductStock(productID, services.ProductStockUpdate{
		CurrentStock:      req.CurrentStock,
		ReservedStock:     req.ReservedStock,
		ReorderLevel:      req.ReorderLevel,
		MaxStockLevel:     req.MaxStockLevel,
		UnitOfMeasure:     req.UnitOfMeasure,
		WarehouseLocation: req.WarehouseLocation,
		BatchNumber:       req.BatchNumber,
		UpdatedBy:         req.UpdatedBy,
	})
	if err != nil {
		log.Printf("Error updating product stock for %s: %v", productID, err)
		return respondError(c, "Could not update product stock", err)
	}
	return c.JSON(stock)
}

// HandleGetProductStock returns the product-level ledger row.
func (h *StockHandler) HandleGetProductStock(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	stock, err := h.stockService.GetProductStock(productID)
	if err != nil {
		log.Printf("Error getting product stock for %s: %v", productID, err)
		return respondError(c, "Could not retrieve product stock", err)
	}
	return c.JSON(stock)
}
