package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/auth"
	"github.com/Gitram007/pre-deployment--v2/internal/application/inventory"
	"github.com/Gitram007/pre-deployment--v2/internal/application/production"
	"github.com/Gitram007/pre-deployment--v2/internal/application/reports"
	"github.com/Gitram007/pre-deployment--v2/internal/application/usecase"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	MaterialUC  *usecase.MaterialUseCase
	MappingUC   *usecase.MappingUseCase
	Planner     *production.Planner
	InwardUC    *inventory.InwardUseCase
	ReportUC    *reports.ReportUseCase
	DashboardUC *reports.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresa del usuario autenticado
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.GetMine)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	mappingHandler := NewMappingHandler(deps.MappingUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/mappings", mappingHandler.ListByProduct)

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/low-stock", materialHandler.ListLowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Mappings / recetas (protegido)
	mappings := protected.Group("/mappings")
	mappings.Post("/", mappingHandler.Create)
	mappings.Get("/", mappingHandler.List)
	mappings.Get("/:id", mappingHandler.GetByID)
	mappings.Put("/:id", mappingHandler.Update)
	mappings.Delete("/:id", mappingHandler.Delete)

	// Órdenes de producción + calculador (protegido)
	productionHandler := NewProductionHandler(deps.Planner)
	orders := protected.Group("/production-orders")
	orders.Post("/", productionHandler.Create)
	orders.Get("/", productionHandler.List)
	orders.Get("/:id", productionHandler.GetByID)
	protected.Post("/calculator", productionHandler.Estimate)

	// Entradas de material (protegido)
	inward := protected.Group("/inward-entries")
	inwardHandler := NewInwardHandler(deps.InwardUC)
	inward.Post("/", inwardHandler.Create)
	inward.Get("/", inwardHandler.List)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/product-usage/:id", reportHandler.UsageByProduct)
	reportsGroup.Get("/material-usage", reportHandler.UsageOverall)
	reportsGroup.Get("/overall-report", reportHandler.Overall)
	reportsGroup.Get("/overall-report/pdf", reportHandler.OverallPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
