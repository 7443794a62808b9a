package main

import (
	"log"

	"github.com/BenViveiros/CleanCutYardWorks/internal/application/service"
	"github.com/BenViveiros/CleanCutYardWorks/internal/config"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
	"github.com/BenViveiros/CleanCutYardWorks/internal/infrastructure/database"
	infraRepo "github.com/BenViveiros/CleanCutYardWorks/internal/infrastructure/repository"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/handler"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/routes"
)

func main() {
	cfg := config.Load()

	var (
		customerRepo  repository.CustomerRepository
		quoteRepo     repository.QuoteRepository
		quoteItemRepo repository.QuoteItemRepository
	)

	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		customerRepo = infraRepo.NewCustomerRepository(db)
		quoteRepo = infraRepo.NewQuoteRepository(db)
		quoteItemRepo = infraRepo.NewQuoteItemRepository(db)
	case "memory":
		store := infraRepo.NewMemoryStore()
		customerRepo = store.Customers()
		quoteRepo = store.Quotes()
		quoteItemRepo = store.QuoteItems()
	default:
		log.Fatalf("Unknown store driver %q", cfg.Store.Driver)
	}

	customerService := service.NewCustomerService(customerRepo)
	quoteService := service.NewQuoteService(quoteRepo, quoteItemRepo, customerRepo)
	dashboardService := service.NewDashboardService(quoteRepo, customerRepo)

	if cfg.App.SeedDemo {
		seedDemoData(quoteService)
	}

	customerHandler := handler.NewCustomerHandler(customerService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router := routes.SetupRouter(cfg, customerHandler, quoteHandler, dashboardHandler)

	log.Printf("%s listening on :%s (store: %s)", cfg.App.Name, cfg.App.Port, cfg.Store.Driver)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
