package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       AuthService
	Organization OrganizationService
	Operators    OperatorService
	Catalog      CatalogService
	Movements    MovementService
	Dashboard    DashboardService
	Reports      ReportSource
	PDF          ports.ExpiryReportRenderer
	XLSX         ports.SeriesExporter
	Contact      ContactService
	ContactLimit *IPRateLimiter
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Contacto (público, con rate limit por IP)
	contactHandler := NewContactHandler(deps.Contact, deps.ContactLimit)
	api.Post("/contact", contactHandler.Submit)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleOperator)

	// Organización y operarios
	orgHandler := NewOrganizationHandler(deps.Organization, deps.Operators)
	protected.Get("/organization", anyRole, orgHandler.Get)
	protected.Put("/organization", adminOnly, orgHandler.Rename)
	protected.Get("/operators", adminOnly, orgHandler.ListOperators)
	protected.Post("/operators", adminOnly, orgHandler.CreateOperator)
	protected.Put("/operators/:id", adminOnly, orgHandler.UpdateOperator)
	protected.Delete("/operators/:id", adminOnly, orgHandler.DeleteOperator)

	// Inventario
	invHandler := NewInventoryHandler(deps.Catalog, deps.Movements)
	protected.Get("/products", anyRole, invHandler.ListProducts)
	protected.Post("/products", adminOnly, invHandler.CreateProduct)
	protected.Put("/products/:id", adminOnly, invHandler.UpdateProduct)
	protected.Delete("/products/:id", adminOnly, invHandler.DeleteProduct)
	protected.Get("/lots", anyRole, invHandler.ListLots)
	protected.Get("/movements", anyRole, invHandler.RecentMovements)
	protected.Post("/movements", anyRole, invHandler.RegisterMovement)

	// Dashboard
	dash := protected.Group("/dashboard", anyRole)
	dashHandler := NewDashboardHandler(deps.Dashboard)
	dash.Get("/summary", dashHandler.GetSummary)
	dash.Get("/movements", dashHandler.GetMovementSeries)
	dash.Get("/stock", dashHandler.GetStockSnapshot)
	dash.Get("/stock-history", dashHandler.GetStockHistory)
	dash.Get("/products/:id/trajectory", dashHandler.GetProductTrajectory)
	dash.Get("/ranking", dashHandler.GetActivityRanking)
	dash.Get("/expiry", dashHandler.GetExpiryRisk)
	dash.Get("/latest/:view", dashHandler.GetLatest)

	// Reportes descargables
	reports := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.Reports, deps.Organization, deps.PDF, deps.XLSX)
	reports.Get("/expiry.pdf", reportHandler.ExpiryPDF)
	reports.Get("/movements.xlsx", reportHandler.MovementsXLSX)
}
