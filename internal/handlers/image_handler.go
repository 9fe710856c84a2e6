package handlers

import (
	"io"
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler handles multipart image uploads: raw images bound for the
// processing pipeline and typed product images.
type ImageHandler struct {
	imageService *services.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// RegisterRoutes registers the image routes with the Fiber app.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/images/upload", h.HandleUploadRawImage)
	router.Post("/products/:id/images/:imageType", h.HandleUploadProductImage)
}

func readUpload(c *fiber.Ctx) (*models.ImageUpload, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &models.ImageUpload{
		Filename:    fileHeader.Filename,
		Content:     content,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// HandleUploadRawImage stores a raw image and queues it for processing.
func (h *ImageHandler) HandleUploadRawImage(c *fiber.Ctx) error {
	upload, err := readUpload(c)
	if err != nil {
		log.Printf("Error reading raw image upload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid file upload",
			"error":   err.Error(),
		})
	}

	key, err := h.imageService.UploadRawImage(*upload)
	if err != nil {
		log.Printf("Error storing raw image %s: %v", upload.Filename, err)
		return respondError(c, "Could not store image", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"key":      key,
		"filename": upload.Filename,
	})
}

// HandleUploadProductImage stores a typed image for a product and records
// the resulting URL on it.
func (h *ImageHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	productID := models.ProductID(c.Params("id"))
	imageType := c.Params("imageType")

	upload, err := readUpload(c)
	if err != nil {
		log.Printf("Error reading product image upload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid file upload",
			"error":   err.Error(),
		})
	}

	product, err := h.imageService.UploadProductImage(productID, imageType, *upload)
	if err != nil {
		log.Printf("Error uploading %s image for product %s: %v", imageType, productID, err)
		return respondError(c, "Could not upload product image", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
