package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/pizzeria-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizzeria-api/internal/audit"
	"github.com/franciscosanchezn/pizzeria-api/internal/auth"
	"github.com/franciscosanchezn/pizzeria-api/internal/config"
	"github.com/franciscosanchezn/pizzeria-api/internal/controllers"
	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

// handlers groups everything the router mounts
type handlers struct {
	pizzas    *controllers.PizzaController
	orders    *controllers.OrderController
	customers *controllers.CustomerController
	clients   *controllers.ClientController
	audit     *controllers.AuditController
	oauth     *auth.OAuthService
}

// @title Pizzeria API
// @version 1.0
// @description Pizza catalog, customers and orders of a pizzeria
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration, then finish the logger setup with it
	configuration := loadConfig()
	setUpLogger(configuration)

	// Prices are serialized as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	db := setupDatabase(configuration)
	h := newHandlers(db, configuration)
	router := setupRouter(h, configuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, router, configuration); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger configures the standard logger and hands it to the database layer
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(conf.Level())
	database.SetLogger(log.StandardLogger())

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates and, when enabled, seeds the database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	if conf.Database.Seed {
		checkPanicErr(database.Seed(db, time.Now()))
	}
	return db
}

// newHandlers builds stores, the audit trail, services and controllers
func newHandlers(db *gorm.DB, conf *config.Config) handlers {
	logger := log.StandardLogger()

	hooks := repository.NewPizzaHooks(logger)
	pizzaRepo := repository.NewGormPizzaRepository(db, hooks)
	customerRepo := repository.NewGormCustomerRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	tx := repository.NewGormTransactor(db)

	journal := audit.NewJournal(audit.DefaultJournalSize)
	recorder := audit.NewRecorder(audit.MultiSink{audit.NewLogSink(logger), journal}, audit.WithLogger(logger))
	recorder.Attach(hooks)

	staffService := services.NewStaffService(db)

	return handlers{
		pizzas:    controllers.NewPizzaController(services.NewPizzaService(pizzaRepo, tx), logger),
		orders:    controllers.NewOrderController(services.NewOrderService(orderRepo, customerRepo, pizzaRepo, tx), logger),
		customers: controllers.NewCustomerController(services.NewCustomerService(customerRepo), logger),
		clients:   controllers.NewClientController(services.NewClientService(db), logger),
		audit:     controllers.NewAuditController(journal),
		oauth:     auth.NewOAuthService(db, conf.JWTSecret, staffService),
	}
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter(h handlers, conf *config.Config) *gin.Engine {
	logger := log.StandardLogger()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(logger), gin.Recovery())

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/oauth/token", h.oauth.HandleToken)

		publicApi := v1.Group("/public")
		publicApi.Use(middleware.RateLimit(conf.RateLimit, conf.RateBurst, logger))
		h.pizzas.RegisterPublicRoutes(publicApi)

		// Protected routes require a Bearer token from /oauth/token
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.Authenticate([]byte(conf.JWTSecret)))
		{
			h.customers.RegisterRoutes(protectedApi)
			h.orders.RegisterRoutes(protectedApi)
			h.clients.RegisterRoutes(protectedApi)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			h.pizzas.RegisterAdminRoutes(adminApi)
			h.audit.RegisterRoutes(adminApi)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// serve runs the HTTP server until ctx is cancelled, then drains it
func serve(ctx context.Context, handler http.Handler, conf *config.Config) error {
	srv := &http.Server{
		Addr:              conf.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.WithField("timeout", conf.ShutdownTimeout.String()).Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-api",
	})
}
