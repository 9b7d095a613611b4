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

type BudgetItemCreateDTO struct {
	ItemName         string  `json:"item_name" validate:"required,min=1"`
	PurchasingSource string  `json:"purchasing_source" validate:"omitempty"`
	Quantity         int     `json:"quantity" validate:"required,gte=1"`
	UnitPrice        float64 `json:"unit_price" validate:"gte=0"`
	ShippingTax      float64 `json:"shipping_tax" validate:"omitempty,gte=0"`
	PurchaseLink     string  `json:"purchase_link" validate:"omitempty,url"`
	Status           string  `json:"status" validate:"omitempty,oneof=planning pending ordered delivered completed"`
}

type BudgetItemUpdateDTO struct {
	ItemName         *string  `json:"item_name" validate:"omitempty,min=1"`
	PurchasingSource *string  `json:"purchasing_source" validate:"omitempty"`
	Quantity         *int     `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice        *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	ShippingTax      *float64 `json:"shipping_tax" validate:"omitempty,gte=0"`
	PurchaseLink     *string  `json:"purchase_link" validate:"omitempty,url"`
	Status           *string  `json:"status" validate:"omitempty,oneof=planning pending ordered delivered completed"`
}

// budgetItemTotal is the single place the RAB rollup is computed, so the
// stored total can never diverge from its factors.
func budgetItemTotal(quantity int, unitPrice, shippingTax float64) float64 {
	return utils.Round2(float64(quantity)*unitPrice + shippingTax)
}

// POST /api/project/:id/rab
func CreateBudgetItem(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	var in BudgetItemCreateDTO
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

	status := in.Status
	if status == "" {
		status = "planning"
	}

	item := models.BudgetItem{
		ProjectId:        projectID,
		ItemName:         in.ItemName,
		PurchasingSource: in.PurchasingSource,
		Quantity:         in.Quantity,
		UnitPrice:        in.UnitPrice,
		ShippingTax:      in.ShippingTax,
		TotalPrice:       budgetItemTotal(in.Quantity, in.UnitPrice, in.ShippingTax),
		PurchaseLink:     in.PurchaseLink,
		Status:           status,
	}
	if err := db.Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create budget item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GET /api/project/:id/rab
func GetBudgetItems(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var items []models.BudgetItem
	if err := db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"budget_items": items,
		"message":      "success",
	})
}

// GET /api/rab/:id
func GetBudgetItem(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing budget item id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var item models.BudgetItem
	if err := db.Preload("Project").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "budget item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(item)
}

// PUT /api/rab/:id
func UpdateBudgetItem(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing budget item id in path")
	}

	var in BudgetItemUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.BudgetItem
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "budget item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)

	// Recompute the rollup from the post-update factors.
	quantity := existing.Quantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	unitPrice := existing.UnitPrice
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	shippingTax := existing.ShippingTax
	if in.ShippingTax != nil {
		shippingTax = *in.ShippingTax
	}
	updates["total_price"] = budgetItemTotal(quantity, unitPrice, shippingTax)

	if err := db.Model(&models.BudgetItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update budget item")
	}

	var out models.BudgetItem
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload budget item")
	}
	return c.JSON(out)
}

// DELETE /api/rab/:id
func DeleteBudgetItem(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing budget item id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.BudgetItem{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete budget item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "budget item not found")
	}
	return c.JSON(fiber.Map{"message": "budget item deleted"})
}
