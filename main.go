package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"github.com/salonhq/booking-api/config"
	"github.com/salonhq/booking-api/controllers"
	appcron "github.com/salonhq/booking-api/cron"
	"github.com/salonhq/booking-api/db"
	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/routes"
	"github.com/salonhq/booking-api/utils"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var mailer *utils.Mailer
	if cfg.MailEnabled() {
		mailer = utils.NewMailer(cfg)
	}

	var uploader *utils.Uploader
	if cfg.CloudinaryCloudName != "" {
		uploader, err = utils.NewUploader(cfg)
		if err != nil {
			log.Fatal("Failed to init cloudinary: ", err)
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Salon Booking API", "version": "1.0.0"})
	})

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "message": "Salon Booking API is running!"})
	})

	protected := middleware.Protected(cfg, gdb, rdb)
	requireAdmin := middleware.RequireAdmin()

	routes.SetupAuthRoutes(api, controllers.NewAuthController(gdb, rdb, cfg), protected)
	routes.SetupCatalogRoutes(api, controllers.NewServiceController(gdb), controllers.NewStaffController(gdb))
	routes.SetupBookingRoutes(api,
		controllers.NewAppointmentController(gdb),
		controllers.NewBookingController(gdb, mailer),
		controllers.NewPaymentController(gdb),
		controllers.NewUserController(gdb),
		protected,
	)
	routes.SetupAdminRoutes(api, controllers.NewAdminController(gdb, uploader), protected, requireAdmin)

	if mailer != nil {
		scheduler, err := appcron.Start(gdb, mailer)
		if err != nil {
			log.Fatal("Failed to start reminder scheduler: ", err)
		}
		defer scheduler.Stop()
	}

	log.Println("Server started on port " + cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
