package controllers

import (
	"techforge-backend/database"
	"techforge-backend/models"

	"github.com/gofiber/fiber/v2"
)

// GuestProjectSummary is the public transparency rollup of one project.
// Balance is income minus spending (credit - debit).
type GuestProjectSummary struct {
	Project     models.Project `json:"project"`
	TotalRAB    float64        `json:"total_rab"`
	TotalCredit float64        `json:"total_credit"`
	TotalDebit  float64        `json:"total_debit"`
	Balance     float64        `json:"balance"`
}

// GET /api/guest/projects — public, no auth.
func GetGuestProjects(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db unavailable")
	}

	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	// One grouped query per aggregate instead of per-project round trips.
	var rabTotals []struct {
		ProjectId string
		Total     float64
	}
	if err := db.Model(&models.BudgetItem{}).
		Select("project_id, COALESCE(SUM(total_price), 0) AS total").
		Group("project_id").
		Scan(&rabTotals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	rabByProject := make(map[string]float64, len(rabTotals))
	for _, row := range rabTotals {
		rabByProject[row.ProjectId] = row.Total
	}

	var ledgerTotals []struct {
		ProjectId string
		Credit    float64
		Debit     float64
	}
	if err := db.Model(&models.Transaction{}).
		Select("project_id, COALESCE(SUM(credit), 0) AS credit, COALESCE(SUM(debit), 0) AS debit").
		Group("project_id").
		Scan(&ledgerTotals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	ledgerByProject := make(map[string]struct{ credit, debit float64 }, len(ledgerTotals))
	for _, row := range ledgerTotals {
		ledgerByProject[row.ProjectId] = struct{ credit, debit float64 }{row.Credit, row.Debit}
	}

	summaries := make([]GuestProjectSummary, 0, len(projects))
	for _, project := range projects {
		ledger := ledgerByProject[project.Id]
		summaries = append(summaries, GuestProjectSummary{
			Project:     project,
			TotalRAB:    rabByProject[project.Id],
			TotalCredit: ledger.credit,
			TotalDebit:  ledger.debit,
			Balance:     ledger.credit - ledger.debit,
		})
	}

	return c.JSON(fiber.Map{
		"projects": summaries,
		"message":  "success",
	})
}
