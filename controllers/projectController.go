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

type ProjectCreateDTO struct {
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description" validate:"omitempty"`
	StartDate    string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	TotalBudget  float64 `json:"total_budget" validate:"omitempty,gte=0"`
	CustomerName string  `json:"customer_name" validate:"omitempty"`
	CustomerDesc string  `json:"customer_desc" validate:"omitempty"`
}

type ProjectUpdateDTO struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Description  *string  `json:"description" validate:"omitempty"`
	StartDate    *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	TotalBudget  *float64 `json:"total_budget" validate:"omitempty,gte=0"`
	CustomerName *string  `json:"customer_name" validate:"omitempty"`
	CustomerDesc *string  `json:"customer_desc" validate:"omitempty"`
}

// POST /api/project
func CreateProject(c *fiber.Ctx) error {
	var in ProjectCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return err
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	project := models.Project{
		Name:         in.Name,
		Description:  in.Description,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalBudget:  in.TotalBudget,
		CustomerName: in.CustomerName,
		CustomerDesc: in.CustomerDesc,
	}
	if err := db.Create(&project).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create project")
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GET /api/projects
func GetProjects(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{
		"projects": projects,
		"message":  "success",
	})
}

// GET /api/project/:id
func GetProject(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(project)
}

// PUT /api/project/:id
func UpdateProject(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	var in ProjectUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	// Ensure exists
	var existing models.Project
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if in.StartDate != nil {
		startDate, err := parseDate(*in.StartDate)
		if err != nil {
			return err
		}
		updates["start_date"] = startDate
	}
	if in.EndDate != nil {
		endDate, err := parseDate(*in.EndDate)
		if err != nil {
			return err
		}
		updates["end_date"] = endDate
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update project")
		}
	}

	var out models.Project
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload project")
	}
	return c.JSON(out)
}

// DELETE /api/project/:id
func DeleteProject(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing project id in path")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	res := db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete project")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}
	return c.JSON(fiber.Map{"message": "project deleted"})
}
