package handlers

import (
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PartnerHandler handles HTTP requests for retail partners.
type PartnerHandler struct {
	partnerService *services.PartnerService
	validate       *validator.Validate
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(partnerService *services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the partner routes with the Fiber app.
func (h *PartnerHandler) RegisterRoutes(router fiber.Router) {
	partnerRoutes := router.Group("/partners")
	partnerRoutes.Post("/", h.HandleCreatePartner)
	partnerRoutes.Get("/", h.HandleGetPartners)
	partnerRoutes.Get("/:id", h.HandleGetPartner)
	partnerRoutes.Put("/:id/contact", h.HandleUpdateContact)
	partnerRoutes.Post("/:id/activate", h.HandleActivatePartner)
	partnerRoutes.Post("/:id/deactivate", h.HandleDeactivatePartner)
	partnerRoutes.Delete("/:id", h.HandleDeletePartner)
}

// CreatePartnerRequest is the request body for partner creation.
type CreatePartnerRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Code         string `json:"code" validate:"required,max=50"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=50"`
	Address      string `json:"address"`
}

// HandleCreatePartner creates a new partner. A taken partner code is
// rejected with 409.
func (h *PartnerHandler) HandleCreatePartner(c *fiber.Ctx) error {
	var req CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	partner, err := h.partnerService.CreatePartner(services.CreatePartnerInput{
		Name:         req.Name,
		Code:         req.Code,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		log.Printf("Error creating partner: %v", err)
		return respondError(c, "Could not create partner", err)
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

// HandleGetPartners retrieves all partners.
func (h *PartnerHandler) HandleGetPartners(c *fiber.Ctx) error {
	partners, err := h.partnerService.GetAllPartners()
	if err != nil {
		log.Printf("Error getting all partners: %v", err)
		return respondError(c, "Could not retrieve partners", err)
	}
	return c.JSON(partners)
}

// HandleGetPartner retrieves a single partner by its ID.
func (h *PartnerHandler) HandleGetPartner(c *fiber.Ctx) error {
	id := models.PartnerID(c.Params("id"))
	partner, err := h.partnerService.GetPartner(id)
	if err != nil {
		log.Printf("Error getting partner %s: %v", id, err)
		return respondError(c, "Could not retrieve partner", err)
	}
	return c.JSON(partner)
}

// ContactUpdateRequest is the request body for a partial contact update.
type ContactUpdateRequest struct {
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=50"`
	Address      *string `json:"address"`
}

// HandleUpdateContact applies only the supplied contact fields.
func (h *PartnerHandler) HandleUpdateContact(c *fiber.Ctx) error {
	id := models.PartnerID(c.Params("id"))
	var req ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	partner, err := h.partnerService.UpdatePartnerContact(id, req.ContactEmail, req.ContactPhone, req.Address)
	if err != nil {
		log.Printf("Error updating partner %s contact: %v", id, err)
		return respondError(c, "Could not update partner contact", err)
	}
	return c.JSON(partner)
}

// HandleActivatePartner marks a partner active.
func (h *PartnerHandler) HandleActivatePartner(c *fiber.Ctx) error {
	id := models.PartnerID(c.Params("id"))
	partner, err := h.partnerService.SetPartnerActive(id, true)
	if err != nil {
		log.Printf("Error activating partner %s: %v", id, err)
		return respondError(c, "Could not activate partner", err)
	}
	return c.JSON(partner)
}

// HandleDeactivatePartner marks a partner inactive. Existing stock
// records are untouched.
func (h *PartnerHandler) HandleDeactivatePartner(c *fiber.Ctx) error {
	id := models.PartnerID(c.Params("id"))
	partner, err := h.partnerService.SetPartnerActive(id, false)
	if err != nil {
		log.Printf("Error deactivating partner %s: %v", id, err)
		return respondError(c, "Could not deactivate partner", err)
	}
	return c.JSON(partner)
}

// HandleDeletePartner removes a partner.
func (h *PartnerHandler) HandleDeletePartner(c *fiber.Ctx) error {
	id := models.PartnerID(c.Params("id"))
	deleted, err := h.partnerService.DeletePartner(id)
	if err != nil {
		log.Printf("Error deleting partner %s: %v", id, err)
		return respondError(c, "Could not delete partner", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Partner with ID %s not found", id),
		})
	}
	return c.JSON(fiber.Map{"message": "Partner deleted"})
}
