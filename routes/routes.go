package routes

import (
	"github.com/gofiber/fiber/v2"

	"techforge-backend/controllers"
	"techforge-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Public transparency view (no auth)
	api.Get("/guest/projects", controllers.GetGuestProjects)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction for mutating methods
	protected.Use(middlewares.RequestTx())

	// Session
	protected.Get("/user", controllers.CurrentUser)

	// Projects
	protected.Post("/project", controllers.CreateProject)
	protected.Get("/projects", controllers.GetProjects)
	protected.Get("/project/:id", controllers.GetProject)
	protected.Put("/project/:id", controllers.UpdateProject)
	protected.Delete("/project/:id", controllers.DeleteProject)

	// RAB (budget items, project-scoped)
	protected.Post("/project/:id/rab", controllers.CreateBudgetItem)
	protected.Get("/project/:id/rab", controllers.GetBudgetItems)
	protected.Get("/rab/:id", controllers.GetBudgetItem)
	protected.Put("/rab/:id", controllers.UpdateBudgetItem)
	protected.Delete("/rab/:id", controllers.DeleteBudgetItem)

	// Transactions
	protected.Post("/project/:id/transaction", controllers.CreateTransaction)
	protected.Get("/project/:id/transactions", controllers.GetTransactions)
	protected.Get("/transaction/:id", controllers.GetTransaction)
	protected.Put("/transaction/:id", controllers.UpdateTransaction)
	protected.Delete("/transaction/:id", controllers.DeleteTransaction)

	// Invoices
	protected.Post("/project/:id/invoice", controllers.CreateInvoice)
	protected.Get("/project/:id/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoice/:id", controllers.UpdateInvoice)
	protected.Delete("/invoice/:id", controllers.DeleteInvoice)

	// Invoice documents (PDF)
	protected.Post("/project/:id/invoice-document", controllers.GenerateInvoiceDocument)
	protected.Get("/project/:id/documents", controllers.GetDocumentLogs)

	// Dashboard
	protected.Get("/dashboard", controllers.GetDashboard)
}
