package main

import (
	"net/http"

	"lightbill/config"
	"lightbill/db"
	"lightbill/db/mongo"
	"lightbill/db/postgres"
	"lightbill/handlers"
	"lightbill/logger"
	"lightbill/notify"
	"lightbill/repository"
	"lightbill/routes"
	"lightbill/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	var rentalRepo repository.RentalRepository
	var clientRepo repository.ClientRepository
	var companyRepo repository.CompanyRepository
	var inventoryRepo repository.InventoryRepository
	var invoiceRepo repository.InvoiceRepository
	var paymentRepo repository.PaymentRepository
	var settingsRepo repository.SettingsRepository
	var userRepo repository.UserRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		rentalRepo = repository.NewPostgresRentalRepo(pg.Conn)
		clientRepo = repository.NewPostgresClientRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)
		inventoryRepo = repository.NewPostgresInventoryRepo(pg.Conn)
		invoiceRepo = repository.NewPostgresInvoiceRepo(pg.Conn)
		paymentRepo = repository.NewPostgresPaymentRepo(pg.Conn)
		settingsRepo = repository.NewPostgresSettingsRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		rentalRepo = repository.NewMongoRentalRepo(mg.Client)
		clientRepo = repository.NewMongoClientRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)
		inventoryRepo = repository.NewMongoInventoryRepo(mg.Client)
		invoiceRepo = repository.NewMongoInvoiceRepo(mg.Client)
		paymentRepo = repository.NewMongoPaymentRepo(mg.Client)
		settingsRepo = repository.NewMongoSettingsRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	rentalHandler := &handlers.RentalHandler{
		Repo:          rentalRepo,
		ClientRepo:    clientRepo,
		SettingsRepo:  settingsRepo,
		Mailer:        notify.NewSMTPMailer(cfg),
		RenderInvoice: utils.GenerateBookingInvoicePDF,
	}
	clientHandler := &handlers.ClientHandler{Repo: clientRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}
	inventoryHandler := &handlers.InventoryHandler{Repo: inventoryRepo}
	paymentHandler := &handlers.PaymentHandler{Repo: paymentRepo}
	settingsHandler := &handlers.SettingsHandler{Repo: settingsRepo}
	reportHandler := &handlers.ReportHandler{
		RentalRepo:  rentalRepo,
		InvoiceRepo: invoiceRepo,
		ClientRepo:  clientRepo,
		CompanyRepo: companyRepo,
	}

	// PDF handler with combined repository
	pdfRepo := &repository.PDFRepository{
		InvoiceRepo:  invoiceRepo,
		RentalRepo:   rentalRepo,
		ClientRepo:   clientRepo,
		CompanyRepo:  companyRepo,
		SettingsRepo: settingsRepo,
	}
	invoiceHandler := &handlers.InvoiceHandler{
		Repo:      invoiceRepo,
		PDFRepo:   pdfRepo,
		DeletePDF: utils.DeleteFromR2,
	}
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFSavePath}

	routes.SetupRoutes(
		userHandler,
		rentalHandler,
		clientHandler,
		companyHandler,
		inventoryHandler,
		invoiceHandler,
		paymentHandler,
		settingsHandler,
		reportHandler,
		pdfHandler,
	)

	logger.Info("server listening", "port", cfg.Port, "db_type", cfg.DBType)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
