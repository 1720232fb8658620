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
	amqp "github.com/rabbitmq/amqp091-go"

	appanalytics "github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	appOrder "github.com/jhoicas/tienda-api/internal/application/order"
	"github.com/jhoicas/tienda-api/internal/application/reports"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/tienda-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	infrarabbit "github.com/jhoicas/tienda-api/internal/infrastructure/rabbitmq"
	infraredis "github.com/jhoicas/tienda-api/internal/infrastructure/redis"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-api/internal/infrastructure/worker"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	amqpConn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a RabbitMQ")
	}
	defer amqpConn.Close()
	amqpCh, err := amqpConn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("canal AMQP")
	}
	defer amqpCh.Close()
	if err := infrarabbit.Setup(amqpCh); err != nil {
		log.Fatal().Err(err).Msg("declarar colas")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	imageStore := storage.NewLocalImageStore(cfg.Shop.UploadDir)
	cartStore := infraredis.NewCartStore(redisClient)
	publisher := infrarabbit.NewPublisher(amqpCh)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	exporter := infraexcel.NewExcelizeExporter()

	shop := reports.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
		Email:   cfg.Shop.Email,
		Website: cfg.Shop.Website,
	}

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, imageStore)
	userAdminUC := usecase.NewUserAdminUseCase(userRepo, orderRepo, txRunner)
	cartUC := cart.NewUseCase(cartStore, productRepo)
	checkoutUC := checkout.NewCreateOrderUseCase(txRunner, cartStore, productRepo, publisher, log)
	orderUC := appOrder.NewStatusUseCase(orderRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	analyticsUC := appanalytics.NewAnalyticsUseCase(analyticsRepo)
	receiptUC := reports.NewReceiptUseCase(orderRepo, receiptGen, shop)
	exportUC := reports.NewExportUseCase(orderRepo, productRepo, analyticsRepo, exporter)

	// Worker de preparación: descuenta stock y pasa los pedidos a en proceso.
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	orderWorker := worker.NewOrderWorker(amqpCh, txRunner, redisClient, log)
	if err := orderWorker.Start(workerCtx); err != nil {
		log.Fatal().Err(err).Msg("arrancar worker de pedidos")
	}

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
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes de producto servidas como estáticos.
	app.Static("/images", cfg.Shop.UploadDir+"/images")

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		UserAdminUC: userAdminUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		AnalyticsUC: analyticsUC,
		ReceiptUC:   receiptUC,
		ExportUC:    exportUC,
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

	orderWorker.Stop()
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
