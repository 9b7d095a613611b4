package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"techforge-backend/database"
	"techforge-backend/middlewares"
	"techforge-backend/models"
	"techforge-backend/pdf"
	"techforge-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GenerateDocumentDTO struct {
	InvoiceIDs    []string `json:"invoice_ids" validate:"omitempty,dive,uuid4"`
	InvoiceNumber string   `json:"invoice_number" validate:"required,min=1"`
	InvoiceDate   string   `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	Mode          string   `json:"mode" validate:"omitempty,oneof=preview save"`
}

// documentGenerator builds the generator with the configured logo asset.
// LOGO_PATH unset means every document renders with a blank logo slot.
func documentGenerator() *pdf.Generator {
	path := strings.TrimSpace(os.Getenv("LOGO_PATH"))
	if path == "" {
		return pdf.NewGenerator(pdf.NoLogo)
	}
	return pdf.NewGenerator(&pdf.FileAssetProvider{Path: path})
}

// POST /api/project/:id/invoice-document
// Renders the project's invoices into a PDF and returns the bytes; preview
// mode serves inline, save mode as an attachment under the generated
// filename. Every successful render is recorded in document_logs.
func GenerateInvoiceDocument(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	var in GenerateDocumentDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	invoiceDate, err := time.Parse(dateLayout, in.InvoiceDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice date, expected yyyy-mm-dd")
	}

	mode := pdf.ModeSave
	if in.Mode == string(pdf.ModePreview) {
		mode = pdf.ModePreview
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

	query := db.Where("project_id = ?", projectID)
	if len(in.InvoiceIDs) > 0 {
		query = query.Where("id IN ?", in.InvoiceIDs)
	}
	var invoices []models.Invoice
	if err := query.Order("created_at ASC").Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	items := make([]pdf.LineItem, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, pdf.LineItem{
			Description: inv.Description,
			Price:       inv.Price,
			Quantity:    inv.Quantity,
			TotalAmount: inv.TotalAmount,
		})
	}

	req := pdf.Request{
		Items: items,
		Project: &pdf.ProjectInfo{
			Name:         project.Name,
			CustomerName: project.CustomerName,
		},
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		Mode:          mode,
	}

	doc, err := documentGenerator().Generate(c.UserContext(), req)
	if err != nil {
		return err // ErrorHandler maps ValidationError/RenderError
	}

	// Trace record; failure to log never blocks the response.
	params, _ := json.Marshal(req)
	entry := models.DocumentLog{
		ProjectId:     projectID,
		InvoiceNumber: in.InvoiceNumber,
		Filename:      doc.Filename,
		Mode:          string(mode),
		Pages:         doc.Pages,
		Total:         doc.Total,
		Params:        datatypes.JSON(params),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("document log insert failed: %v", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	if mode == pdf.ModePreview {
		c.Set(fiber.HeaderContentDisposition, "inline")
	} else {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, doc.Filename))
	}
	return c.Send(doc.Bytes)
}

// GET /api/project/:id/documents — generation history for a project.
func GetDocumentLogs(c *fiber.Ctx) error {
	projectID := strings.TrimSpace(c.Params("id"))
	if projectID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var logs []models.DocumentLog
	if err := db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"documents": logs,
		"message":   "success",
	})
}
