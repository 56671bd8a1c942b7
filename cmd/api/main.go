package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"feedapi/docs"
	"feedapi/internal/config"
	"feedapi/internal/database"
	"feedapi/internal/database/migration"
	"feedapi/internal/docstore"
	memorystore "feedapi/internal/docstore/memory"
	mongostore "feedapi/internal/docstore/mongo"
	pgstore "feedapi/internal/docstore/postgres"
	handlers "feedapi/internal/http/handler"
	"feedapi/internal/http/middleware"
	"feedapi/internal/otel"
	"feedapi/internal/service"
	"feedapi/internal/storage"
)

// pingerFunc adapts a plain function to the health check interface,
// used for the in-memory backend which has nothing to ping.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// @title Feed API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()
	loc := time.UTC

	// Load configuration from environment variables (.env auto-loaded
	// if present)
	cfg := config.Load()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Pick the document store backend. Mongo is the primary store;
	// postgres keeps the same data in a jsonb table; memory is for
	// local development only.
	var (
		store  docstore.Store
		pinger handlers.Pinger
	)
	switch cfg.StoreBackend {
	case "postgres":
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		store = pgstore.NewStore(db)
		pinger = db
	case "memory":
		store = memorystore.New()
		pinger = pingerFunc(func(ctx context.Context) error { return nil })
	case "mongo", "":
		mdb, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}
		defer func() { _ = mdb.Client().Disconnect(context.Background()) }()

		store = mongostore.NewStore(mdb)
		pinger = database.MongoPinger{DB: mdb}
	default:
		log.Fatalf("unknown store backend: %s", cfg.StoreBackend)
	}

	// S3-compatible object storage for media content
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	svcs := handlers.Services{
		Posts:    service.NewPostService(store),
		Comments: service.NewCommentService(store),
		Topics:   service.NewTopicService(store),
		Statuses: service.NewUserStatusService(store),
		Media:    service.NewMediaService(objStore, store),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, pinger, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
