package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/auth"
	"github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/application/docgen"
	"github.com/wattwerk/wattwerk-api/internal/application/report"
	"github.com/wattwerk/wattwerk-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CompanyUC   *usecase.CompanyUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProjectUC   *usecase.ProjectUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	TimeEntryUC *usecase.TimeEntryUseCase
	MaterialUC  *usecase.MaterialUseCase
	CatalogUC   *usecase.CatalogUseCase
	SummaryUC   *billing.SummaryUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *docgen.PDFUseCase
	ReportUC    *report.UseCase
	Storage     Uploader
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Company master data (office staff only)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", RequireRole("admin", "office"), companyHandler.Update)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Employees (office staff manage, everyone reads)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", RequireRole("admin", "office"), employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", RequireRole("admin", "office"), employeeHandler.Update)

	// Projects and their sub-resources
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)

	timeEntryHandler := NewTimeEntryHandler(deps.TimeEntryUC)
	projects.Post("/:id/time-entries", timeEntryHandler.Create)
	projects.Get("/:id/time-entries", timeEntryHandler.ListByProject)
	protected.Put("/time-entries/:id", timeEntryHandler.Update)
	protected.Delete("/time-entries/:id", timeEntryHandler.Delete)

	materialHandler := NewMaterialHandler(deps.MaterialUC)
	projects.Post("/:id/materials", materialHandler.Create)
	projects.Get("/:id/materials", materialHandler.ListByProject)
	protected.Put("/materials/:id", materialHandler.Update)
	protected.Delete("/materials/:id", materialHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := protected.Group("/catalog")
	catalog.Post("/", RequireRole("admin", "office"), catalogHandler.CreateItem)
	catalog.Get("/", catalogHandler.ListItems)
	catalog.Put("/:id", RequireRole("admin", "office"), catalogHandler.UpdateItem)
	projects.Post("/:id/catalog-lines", catalogHandler.AddLine)
	projects.Get("/:id/catalog-lines", catalogHandler.ListLines)
	projects.Delete("/:id/catalog-lines/:lineID", catalogHandler.RemoveLine)

	// Billing: summary, invoices, PDFs (office staff only)
	office := RequireRole("admin", "office")
	billingHandler := NewBillingHandler(deps.SummaryUC, deps.InvoiceUC, deps.PDFUC)
	projects.Get("/:id/billing-summary", office, billingHandler.Summary)
	projects.Post("/:id/invoices", office, billingHandler.CreateDraft)
	projects.Get("/:id/invoices", office, billingHandler.ListByProject)
	invoices := protected.Group("/invoices", office)
	invoices.Get("/:id", billingHandler.GetByID)
	invoices.Post("/:id/issue", billingHandler.Issue)
	invoices.Post("/:id/pay", billingHandler.MarkPaid)
	invoices.Post("/:id/cancel", billingHandler.Cancel)
	invoices.Get("/:id/pdf", billingHandler.PDF)

	// Control reports
	reportHandler := NewReportHandler(deps.ReportUC)
	projects.Post("/:id/reports", reportHandler.Create)
	projects.Get("/:id/reports", reportHandler.ListByProject)
	reports := protected.Group("/reports")
	reports.Get("/:id", reportHandler.GetByID)
	reports.Put("/:id", reportHandler.Update)
	reports.Get("/:id/pdf", reportHandler.PDF)

	// Uploads
	uploadHandler := NewUploadHandler(deps.Storage)
	upload := protected.Group("/upload")
	upload.Post("/", uploadHandler.Upload)
	upload.Delete("/", uploadHandler.Delete)
	upload.Get("/files/:name", uploadHandler.Serve)
}
