package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/auth"
	"github.com/jhoicas/inventario-lotes/internal/application/stock"
	"github.com/jhoicas/inventario-lotes/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	BatchUC    *usecase.BatchUseCase
	MovementUC *usecase.MovementUseCase
	StockUC    *stock.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas están abiertas a
// cualquier usuario autenticado; las operaciones de stock requieren admin o
// bodeguero y los borrados administrativos solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canMoveStock := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock (protegido): entradas, salidas FEFO y total por producto
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/:id/stock", stockHandler.StockTotal)
	products.Post("/:id/stock/in", canMoveStock, stockHandler.StockIn)
	products.Post("/:id/stock/out", canMoveStock, stockHandler.StockOut)

	// Batches (protegido): solo lectura + operaciones del motor; las altas
	// entran por stock/in para que cada lote nazca con su movimiento IN
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Post("/:id/adjust", canMoveStock, stockHandler.Adjust)
	batches.Post("/:id/expire", canMoveStock, stockHandler.Expire)
	batches.Delete("/:id", adminOnly, batchHandler.Delete)

	// Movements (protegido): libro contable, solo lectura + borrado admin
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Delete("/:id", adminOnly, movementHandler.Delete)
}
