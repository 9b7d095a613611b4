package controllers

import (
	"errors"
	"strings"

	"techforge-backend/database"
	"techforge-backend/middlewares"
	"techforge-backend/models"
	"techforge-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InvoiceCreateDTO struct {
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
}

type InvoiceUpdateDTO struct {
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=1"`
}

// POST /api/project/:id/invoice
func CreateInvoice(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	var in InvoiceCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var project models.Project
	if err := db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	invoice := models.Invoice{
		ProjectId:   projectID,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		TotalAmount: utils.Round2(in.Price * float64(in.Quantity)),
	}
	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GET /api/project/:id/invoices
func GetInvoices(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var invoices []models.Invoice
	if err := db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"invoices": invoices,
		"message":  "success",
	})
}

// GET /api/invoice/:id
func GetInvoice(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing invoice id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var invoice models.Invoice
	if err := db.Preload("Project").First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(invoice)
}

// PUT /api/invoice/:id
func UpdateInvoice(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing invoice id in path")
	}

	var in InvoiceUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Invoice
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)

	// Recompute the stored total from the post-update factors.
	price := existing.Price
	if in.Price != nil {
		price = *in.Price
	}
	quantity := existing.Quantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	updates["total_amount"] = utils.Round2(price * float64(quantity))

	if err := db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update invoice")
	}

	var out models.Invoice
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload invoice")
	}
	return c.JSON(out)
}

// DELETE /api/invoice/:id
func DeleteInvoice(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing invoice id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete invoice")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(fiber.Map{"message": "invoice deleted"})
}
