package controllers

import (
	"time"

	"techforge-backend/database"
	"techforge-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardStats is the admin dashboard rollup across all projects.
type DashboardStats struct {
	TotalProjects     int64   `json:"total_projects"`
	ActiveProjects    int64   `json:"active_projects"`
	TotalBudget       float64 `json:"total_budget"`
	TotalInvoices     int64   `json:"total_invoices"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRABItems     int64   `json:"total_rab_items"`
	TotalRABValue     float64 `json:"total_rab_value"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalIncome       float64 `json:"total_income"`
	TotalExpense      float64 `json:"total_expense"`
	NetCashFlow       float64 `json:"net_cash_flow"`
}

func sumColumn(db *gorm.DB, model any, expr string, dst *float64) error {
	return db.Model(model).Select(expr).Scan(dst).Error
}

// GET /api/dashboard
func GetDashboard(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var stats DashboardStats

	if err := db.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	// A project is active while it has no end date or the end date is in the future.
	if err := db.Model(&models.Project{}).
		Where("end_date IS NULL OR end_date > ?", time.Now()).
		Count(&stats.ActiveProjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if err := sumColumn(db, &models.Project{}, "COALESCE(SUM(total_budget), 0)", &stats.TotalBudget); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	if err := db.Model(&models.Invoice{}).Count(&stats.TotalInvoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if err := sumColumn(db, &models.Invoice{}, "COALESCE(SUM(total_amount), 0)", &stats.TotalRevenue); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	if err := db.Model(&models.BudgetItem{}).Count(&stats.TotalRABItems).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if err := sumColumn(db, &models.BudgetItem{}, "COALESCE(SUM(total_price), 0)", &stats.TotalRABValue); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	if err := db.Model(&models.Transaction{}).Count(&stats.TotalTransactions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if err := sumColumn(db, &models.Transaction{}, "COALESCE(SUM(credit), 0)", &stats.TotalIncome); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	if err := sumColumn(db, &models.Transaction{}, "COALESCE(SUM(debit), 0)", &stats.TotalExpense); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	stats.NetCashFlow = stats.TotalIncome - stats.TotalExpense

	return c.JSON(stats)
}
