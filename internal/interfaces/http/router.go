package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/order"
	"github.com/jhoicas/tienda-api/internal/application/reports"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	UserAdminUC *usecase.UserAdminUseCase
	CartUC      *cart.UseCase
	CheckoutUC  *checkout.CreateOrderUseCase
	OrderUC     *order.StatusUseCase
	DashboardUC *analytics.DashboardUseCase
	AnalyticsUC *analytics.AnalyticsUseCase
	ReceiptUC   *reports.ReceiptUseCase
	ExportUC    *reports.ExportUseCase
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

	// Catálogo de la tienda (público)
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.CategoryUC)
	catalog.Get("/products", catalogHandler.ListProducts)
	catalog.Get("/products/:id", catalogHandler.GetProduct)
	catalog.Get("/categories", catalogHandler.ListCategories)

	// Carrito y checkout (público, con identidad opcional)
	optionalAuth := OptionalAuthMiddleware(deps.JWTSecret)
	cartGroup := api.Group("/cart", optionalAuth)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", optionalAuth, checkoutHandler.Create)

	// Back-office (requiere Bearer Token y rol de staff)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleManager))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AnalyticsUC)
	admin.Get("/dashboard", dashboardHandler.Summary)
	admin.Get("/analytics", dashboardHandler.Analytics)

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/bulk", productHandler.BulkAction)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/image", productHandler.UploadImage)

	orders := admin.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Gestión de cuentas: solo administradores.
	users := admin.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserAdminUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/:id/lock", userHandler.Lock)
	users.Post("/:id/unlock", userHandler.Unlock)
	users.Delete("/:id", userHandler.Delete)
	users.Put("/:id/roles", userHandler.EditRoles)

	reportsGroup := admin.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ExportUC)
	reportsGroup.Get("/orders", reportsHandler.ExportOrders)
	reportsGroup.Get("/products", reportsHandler.ExportProducts)
	reportsGroup.Get("/customers", reportsHandler.ExportCustomers)
}
