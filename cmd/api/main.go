package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/wattwerk/wattwerk-api/internal/application/auth"
	appbilling "github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/application/docgen"
	"github.com/wattwerk/wattwerk-api/internal/application/report"
	"github.com/wattwerk/wattwerk-api/internal/application/usecase"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/htmldoc"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/markup"
	infrapdf "github.com/wattwerk/wattwerk-api/internal/infrastructure/pdf"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/postgres"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/storage"
	httpRouter "github.com/wattwerk/wattwerk-api/internal/interfaces/http"
	"github.com/wattwerk/wattwerk-api/pkg/config"
	"github.com/wattwerk/wattwerk-api/pkg/logger"
	"github.com/wattwerk/wattwerk-api/pkg/money"
)

// storageBackend is the full surface of an upload backend: the API's
// Uploader plus the base URI the PDF engine resolves assets against.
type storageBackend interface {
	Save(r io.Reader, filename string) (string, error)
	Delete(url string) error
	BaseURI() string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	// Repositories
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	materialRepo := postgres.NewMaterialEntryRepository(pool)
	catalogItemRepo := postgres.NewCatalogItemRepository(pool)
	catalogLineRepo := postgres.NewCatalogLineRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportRepo := postgres.NewControlReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Single-tenant bootstrap: make sure the company row exists.
	if err := ensureCompany(companyRepo, cfg.App); err != nil {
		log.Fatal().Err(err).Msg("bootstrap company")
	}

	// Upload storage
	var store storageBackend
	switch cfg.Storage.Backend {
	case "s3":
		s3Store, err := storage.NewS3Storage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("init s3 storage")
		}
		store = s3Store
	default:
		localStore, err := storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicURL)
		if err != nil {
			log.Fatal().Err(err).Msg("init local storage")
		}
		store = localStore
	}

	// Document pipeline: markdown -> HTML -> PDF
	mdRenderer := markup.NewRenderer()
	assembler := htmldoc.NewAssembler(mdRenderer)
	pdfRenderer := infrapdf.NewWkhtmltopdfRenderer(cfg.PDF)
	formatter := money.NewFormatter("de-CH", "CHF")
	templateBuilder := docgen.NewTemplateBuilder(formatter)
	reportGenerator := infrapdf.NewControlReportGenerator()

	defaultVATRate, err := decimal.NewFromString(cfg.App.DefaultVATRate)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.App.DefaultVATRate).Msg("parse default VAT rate")
	}

	// Use cases
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, customerRepo, defaultVATRate)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	timeEntryUC := usecase.NewTimeEntryUseCase(timeEntryRepo, projectRepo, employeeRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, projectRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogItemRepo, catalogLineRepo, projectRepo)
	summaryUC := appbilling.NewSummaryUseCase(projectRepo, materialRepo, catalogLineRepo, timeEntryRepo, employeeRepo)
	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, projectRepo, summaryUC, txRunner, 30)
	pdfUC := docgen.NewPDFUseCase(invoiceUC, companyRepo, customerRepo, projectRepo, templateBuilder, assembler, pdfRenderer, store.BaseURI())
	reportUC := report.NewUseCase(reportRepo, projectRepo, customerRepo, companyRepo, reportGenerator)
	authUC := auth.NewUseCase(userRepo, cfg.App.CompanyID, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF responses can be slow
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Storage.Backend != "s3" {
		app.Static(cfg.Storage.PublicURL, cfg.Storage.LocalDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		CustomerUC:  customerUC,
		ProjectUC:   projectUC,
		EmployeeUC:  employeeUC,
		TimeEntryUC: timeEntryUC,
		MaterialUC:  materialUC,
		CatalogUC:   catalogUC,
		SummaryUC:   summaryUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		ReportUC:    reportUC,
		Storage:     store,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// ensureCompany creates the deployment's company row on first start.
func ensureCompany(repo *postgres.CompanyRepo, app config.AppConfig) error {
	existing, err := repo.GetByID(app.CompanyID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	now := time.Now()
	return repo.Create(&entity.Company{
		ID:        app.CompanyID,
		Name:      app.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
