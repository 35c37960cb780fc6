package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Gitram007/pre-deployment--v2/internal/application/auth"
	"github.com/Gitram007/pre-deployment--v2/internal/application/inventory"
	"github.com/Gitram007/pre-deployment--v2/internal/application/production"
	"github.com/Gitram007/pre-deployment--v2/internal/application/reports"
	"github.com/Gitram007/pre-deployment--v2/internal/application/usecase"
	infrapdf "github.com/Gitram007/pre-deployment--v2/internal/infrastructure/pdf"
	"github.com/Gitram007/pre-deployment--v2/internal/infrastructure/postgres"
	httpRouter "github.com/Gitram007/pre-deployment--v2/internal/interfaces/http"
	"github.com/Gitram007/pre-deployment--v2/pkg/config"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	mappingRepo := postgres.NewMappingRepository(pool)
	orderRepo := postgres.NewProductionOrderRepository(pool)
	entryRepo := postgres.NewInwardEntryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(txRunner, companyRepo, userRepo, cfg.JWT, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	materialUC := usecase.NewMaterialUseCase(materialRepo, log)
	mappingUC := usecase.NewMappingUseCase(mappingRepo, productRepo, materialRepo, log)
	planner := production.NewPlanner(txRunner, productRepo, mappingRepo, materialRepo, orderRepo, log)
	inwardUC := inventory.NewInwardUseCase(txRunner, entryRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, productRepo, companyRepo, pdfGenerator, log)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		MaterialUC:  materialUC,
		MappingUC:   mappingUC,
		Planner:     planner,
		InwardUC:    inwardUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
