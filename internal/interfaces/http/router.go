package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dashboard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InvoiceActions *billing.InvoiceActions
	InvoiceQueries *billing.InvoiceQueries
	InvoicePDF     *billing.PDFUseCase
	CustomerUC     *billing.CustomerUseCase
	DashboardUC    *dashboard.UseCase
	Views          ViewCache // nil = sin cache de vistas
	JWTSecret      string
	SessionTTL     time.Duration
	SecureCookie   bool
	Log            zerolog.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL, deps.SecureCookie, deps.Log)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Dashboard (requiere sesión)
	dash := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dash.Get("/", dashboardHandler.Overview)

	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	dash.Get("/customers", customerHandler.List)

	invoices := dash.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceActions, deps.InvoiceQueries, deps.InvoicePDF, deps.Views, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/create", invoiceHandler.CreateForm)
	invoices.Get("/:id/edit", invoiceHandler.EditForm)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Formularios HTML solo envían POST; los clientes JSON pueden usar PUT/DELETE.
	invoices.Post("/:id/edit", invoiceHandler.Update)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
