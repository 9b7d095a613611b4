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

type TransactionCreateDTO struct {
	TransactionDate  string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Description      string  `json:"description" validate:"required,min=1"`
	Debit            float64 `json:"debit" validate:"omitempty,gte=0"`
	Credit           float64 `json:"credit" validate:"omitempty,gte=0"`
	TransactionType  string  `json:"transaction_type" validate:"required,oneof=income expense transfer adjustment"`
	ProofDocumentURL string  `json:"proof_document_url" validate:"omitempty,url"`
}

type TransactionUpdateDTO struct {
	TransactionDate  *string  `json:"transaction_date" validate:"omitempty,datetime=2006-01-02"`
	Description      *string  `json:"description" validate:"omitempty,min=1"`
	Debit            *float64 `json:"debit" validate:"omitempty,gte=0"`
	Credit           *float64 `json:"credit" validate:"omitempty,gte=0"`
	TransactionType  *string  `json:"transaction_type" validate:"omitempty,oneof=income expense transfer adjustment"`
	ProofDocumentURL *string  `json:"proof_document_url" validate:"omitempty,url"`
}

// POST /api/project/:id/transaction
func CreateTransaction(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	var in TransactionCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	txDate, err := parseDate(in.TransactionDate)
	if err != nil {
		return err
	}

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

	transaction := models.Transaction{
		ProjectId:        projectID,
		TransactionDate:  txDate,
		Description:      in.Description,
		Debit:            in.Debit,
		Credit:           in.Credit,
		TransactionType:  in.TransactionType,
		ProofDocumentURL: in.ProofDocumentURL,
	}
	if err := db.Create(&transaction).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// GET /api/project/:id/transactions
func GetTransactions(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var transactions []models.Transaction
	if err := db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&transactions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"transactions": transactions,
		"message":      "success",
	})
}

// GET /api/transaction/:id
func GetTransaction(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing transaction id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var transaction models.Transaction
	if err := db.Preload("Project").First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(transaction)
}

// PUT /api/transaction/:id
func UpdateTransaction(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing transaction id in path")
	}

	var in TransactionUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var existing models.Transaction
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if in.TransactionDate != nil {
		txDate, err := parseDate(*in.TransactionDate)
		if err != nil {
			return err
		}
		updates["transaction_date"] = txDate
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Transaction{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update transaction")
		}
	}

	var out models.Transaction
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload transaction")
	}
	return c.JSON(out)
}

// DELETE /api/transaction/:id
func DeleteTransaction(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing transaction id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete transaction")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	}
	return c.JSON(fiber.Map{"message": "transaction deleted"})
}
