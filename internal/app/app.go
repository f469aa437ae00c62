package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/salesdesk/salesdesk/config"
	"github.com/salesdesk/salesdesk/internal/database"
	"github.com/salesdesk/salesdesk/internal/domain"
	httpHandler "github.com/salesdesk/salesdesk/internal/http"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/internal/repository"
	"github.com/salesdesk/salesdesk/internal/service"
	"github.com/salesdesk/salesdesk/pkg/forms"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/mailer"
	"github.com/salesdesk/salesdesk/pkg/media"
	"github.com/salesdesk/salesdesk/pkg/ratelimiter"
	"github.com/salesdesk/salesdesk/pkg/storefront"
	"github.com/salesdesk/salesdesk/pkg/tracing"
	"github.com/salesdesk/salesdesk/pkg/voice"
)

const (
	loginAttempts      = 5
	loginWindow        = 15 * time.Minute
	integrationTimeout = 20 * time.Second
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMongo() *mongo.Database
	GetMailer() mailer.Mailer

	// Repository getters for testing
	GetUserRepository() domain.UserRepository
	GetAccountRepository() domain.AccountRepository
	GetProgressRepository() domain.ProgressRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitMongo() error
	InitMailer() error
	InitRepositories() error
	InitRootUser() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config      *config.Config
	logger      logger.Logger
	db          *sql.DB
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	mailer      mailer.Mailer
	exporters   *tracing.Exporters
	stopDBStats func()
	limiter     *ratelimiter.Limiter

	// Repositories
	accountRepo      domain.AccountRepository
	progressRepo     domain.ProgressRepository
	inquiryRepo      domain.InquiryRepository
	notificationRepo domain.NotificationRepository
	emailRepo        domain.EmailRepository
	recordRepo       domain.RecordRepository
	userRepo         domain.UserRepository
	monitoringRepo   domain.MonitoringRepository
	trackingRepo     domain.TrackingRepository
	taskLogRepo      domain.TaskLogRepository
	categoryRepo     domain.CategoryRepository
	inventoryRepo    domain.InventoryRepository

	// Services
	authService         *service.AuthService
	userService         *service.UserService
	accountService      *service.AccountService
	progressService     *service.ProgressService
	inquiryService      *service.InquiryService
	notificationService *service.NotificationService
	emailService        *service.EmailService
	recordService       *service.RecordService
	documentService     *service.DocumentService
	dashboardService    *service.DashboardService
	integrationService  *service.IntegrationService

	// HTTP handlers
	mux           *http.ServeMux
	server        *http.Server
	metricsServer *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMongo configures the app to use an already connected document database
func WithMockMongo(db *mongo.Database) AppOption {
	return func(a *App) {
		a.mongoDB = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing registers the OpenCensus exporters
func (a *App) InitTracing() error {
	exporters, err := tracing.Init(&a.config.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.exporters = exporters

	if a.config.Tracing.Enabled {
		a.logger.WithField("trace_exporter", a.config.Tracing.TraceExporter).
			WithField("metrics_exporter", a.config.Tracing.MetricsExporter).
			WithField("sampling_rate", a.config.Tracing.SamplingProbability).
			Info("Tracing initialized successfully")
	}
	return nil
}

// InitDB opens the Postgres pool and creates missing tables
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	dbConfig := &a.config.Database
	if dbConfig.URL == "" {
		password := dbConfig.Password
		maskedPassword := ""
		if len(password) > 0 {
			maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
		}
		a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.SSLMode, maskedPassword, dbConfig.DBName))

		if err := database.EnsureSystemDatabaseExists(database.GetPostgresDSN(dbConfig), database.DatabaseName(dbConfig)); err != nil {
			a.logger.Error(err.Error())
			return fmt.Errorf("failed to ensure database exists: %w", err)
		}
	} else {
		a.logger.Info("Connecting to database from DATABASE_URL")
	}

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = tracing.WrapSQLDriver(driverName)
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(dbConfig))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	database.ConfigurePool(db)
	if a.config.Tracing.Enabled {
		a.stopDBStats = ocsql.RecordStats(db, 5*time.Second)
	}

	a.db = db
	return nil
}

// InitMongo connects to the document store and creates its indexes
func (a *App) InitMongo() error {
	if a.mongoDB != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.config.Mongo.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(a.config.Mongo.Database)
	if err := database.InitializeMongo(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	a.logger.WithField("database", a.config.Mongo.Database).Info("Connected to mongo")
	a.mongoClient = client
	a.mongoDB = db
	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	if a.config.SMTP.Host == "" {
		a.mailer = mailer.NewConsoleMailer(a.config.SMTP.FromEmail)
		a.logger.Info("SMTP_HOST not set, using console mailer")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	a.logger.WithField("host", a.config.SMTP.Host).Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}
	if a.mongoDB == nil {
		return fmt.Errorf("mongo must be initialized before repositories")
	}

	a.accountRepo = repository.NewAccountRepository(a.db)
	a.progressRepo = repository.NewProgressRepository(a.db)
	a.inquiryRepo = repository.NewInquiryRepository(a.db)
	a.notificationRepo = repository.NewNotificationRepository(a.db)
	a.emailRepo = repository.NewEmailRepository(a.db)
	a.recordRepo = repository.NewRecordRepository(a.db)

	a.userRepo = repository.NewUserRepository(a.mongoDB)
	a.monitoringRepo = repository.NewMonitoringRepository(a.mongoDB)
	a.trackingRepo = repository.NewTrackingRepository(a.mongoDB)
	a.taskLogRepo = repository.NewTaskLogRepository(a.mongoDB)
	a.categoryRepo = repository.NewCategoryRepository(a.mongoDB)
	a.inventoryRepo = repository.NewInventoryRepository(a.mongoDB)

	return nil
}

// InitRootUser seeds the Super Admin named by ROOT_EMAIL
func (a *App) InitRootUser() error {
	if a.userRepo == nil {
		return fmt.Errorf("repositories must be initialized before the root user")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return database.EnsureRootUser(ctx, a.userRepo, a.config.RootEmail, a.config.RootPass)
}

// InitServices initializes all services
func (a *App) InitServices() error {
	location := a.config.Location()
	tracer := tracing.GetTracer()

	authService, err := service.NewAuthService(service.AuthServiceConfig{
		Secret:   a.config.Security.JWTSecret,
		TokenTTL: a.config.Security.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	a.authService = authService

	if a.limiter == nil {
		a.limiter = ratelimiter.New(loginAttempts, loginWindow)
	}

	a.userService = service.NewUserService(service.UserServiceConfig{
		Repository:   a.userRepo,
		AuthService:  a.authService,
		Monitoring:   a.monitoringRepo,
		TaskLogs:     a.taskLogRepo,
		LoginLimiter: a.limiter,
		Logger:       a.logger,
		Tracer:       tracer,
	})

	a.accountService = service.NewAccountService(a.accountRepo, location, a.logger)
	a.progressService = service.NewProgressService(a.progressRepo, location, a.logger)
	a.inquiryService = service.NewInquiryService(a.inquiryRepo, location, a.logger)
	a.notificationService = service.NewNotificationService(a.notificationRepo, a.logger)
	a.emailService = service.NewEmailService(a.emailRepo, a.mailer, a.logger)
	a.recordService = service.NewRecordService(a.recordRepo, a.logger)

	a.documentService = service.NewDocumentService(service.DocumentServiceConfig{
		Monitoring: a.monitoringRepo,
		Tracking:   a.trackingRepo,
		TaskLogs:   a.taskLogRepo,
		Categories: a.categoryRepo,
		Inventory:  a.inventoryRepo,
		Location:   location,
		Logger:     a.logger,
	})

	a.dashboardService = service.NewDashboardService(
		a.accountRepo,
		a.progressRepo,
		a.inquiryRepo,
		a.notificationRepo,
		location,
		a.logger,
	)

	integrations, err := a.integrationServiceConfig(tracer)
	if err != nil {
		return err
	}
	a.integrationService = service.NewIntegrationService(integrations)

	return nil
}

// integrationServiceConfig builds the outbound clients; unconfigured providers answer 503 per call
func (a *App) integrationServiceConfig(tracer tracing.Tracer) (service.IntegrationServiceConfig, error) {
	httpClient := tracer.WrapHTTPClient(&http.Client{Timeout: integrationTimeout})

	cfg := service.IntegrationServiceConfig{
		Voice: voice.NewClient(voice.Config{
			BaseURL:    a.config.Voice.BaseURL,
			AccountSID: a.config.Voice.AccountSID,
			AuthToken:  a.config.Voice.AuthToken,
			FromNumber: a.config.Voice.FromNumber,
			TwimlURL:   a.config.Voice.TwimlURL,
		}, httpClient),
		Shops: map[string]storefront.Shop{
			domain.PlatformShopify: storefront.NewShopify(a.config.Storefront.ShopifyDomain, a.config.Storefront.ShopifyAccessToken, httpClient),
			domain.PlatformWooCommerce: storefront.NewWooCommerce(
				a.config.Storefront.WooBaseURL,
				a.config.Storefront.WooConsumerKey,
				a.config.Storefront.WooConsumerSecret,
				httpClient,
			),
		},
		Forms: forms.NewClient(forms.Config{
			BaseURL:   a.config.Forms.BaseURL,
			APIKey:    a.config.Forms.APIKey,
			APISecret: a.config.Forms.APISecret,
		}, httpClient),
		Inquiries: a.inquiryService,
		Logger:    a.logger,
		Tracer:    tracer,
	}

	store, err := media.NewStore(media.Config{
		Bucket:    a.config.Media.Bucket,
		Region:    a.config.Media.Region,
		Endpoint:  a.config.Media.Endpoint,
		AccessKey: a.config.Media.AccessKey,
		SecretKey: a.config.Media.SecretKey,
		PublicURL: a.config.Media.PublicURL,
	})
	switch {
	case err == nil:
		cfg.Media = store
	case errors.Is(err, media.ErrNotConfigured):
		a.logger.Info("Media storage not configured, uploads disabled")
	default:
		return cfg, fmt.Errorf("failed to create media store: %w", err)
	}

	return cfg, nil
}

// formsWebhookVerifier returns nil when no webhook secret is set
func (a *App) formsWebhookVerifier() (httpHandler.WebhookVerifier, error) {
	verifier, err := forms.NewVerifier(a.config.Forms.WebhookSecret)
	if errors.Is(err, forms.ErrNotConfigured) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return verifier, nil
}

// InitHandlers registers every route on a fresh mux
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	webhookVerifier, err := a.formsWebhookVerifier()
	if err != nil {
		return fmt.Errorf("failed to create forms webhook verifier: %w", err)
	}

	verifier := a.authService
	handlers := []interface{ RegisterRoutes(*http.ServeMux) }{
		httpHandler.NewRootHandler(a.logger, a.config.APIEndpoint, a.config.Version, a.config.Timezone),
		httpHandler.NewUserHandler(a.userService, verifier, a.logger),
		httpHandler.NewAccountHandler(a.accountService, verifier, a.logger),
		httpHandler.NewProgressHandler(a.progressService, verifier, a.logger),
		httpHandler.NewInquiryHandler(a.inquiryService, verifier, a.logger),
		httpHandler.NewNotificationHandler(a.notificationService, verifier, a.logger),
		httpHandler.NewEmailHandler(a.emailService, verifier, a.logger),
		httpHandler.NewRecordHandler(a.recordService, verifier, a.logger),
		httpHandler.NewDocumentHandler(a.documentService, verifier, a.logger),
		httpHandler.NewDashboardHandler(a.dashboardService, verifier, a.logger),
		httpHandler.NewIntegrationHandler(a.integrationService, verifier, a.logger),
		httpHandler.NewFormsWebhookHandler(a.integrationService, webhookVerifier, a.logger),
	}
	for _, h := range handlers {
		h.RegisterRoutes(a.mux)
	}

	return nil
}

// Handler returns the mux wrapped in the shutdown, tracing and CORS middleware
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	handler = a.gracefulShutdownMiddleware(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}

	return middleware.NewCORSMiddleware(a.config.Server.CORSAllowOrigin)(handler)
}

// Start starts the HTTP server
func (a *App) Start() error {
	handler := a.Handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("api_endpoint", a.config.APIEndpoint).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if metrics := a.exporters.MetricsHandler(); metrics != nil {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", metrics)
		a.metricsServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Tracing.PrometheusPort),
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	server := a.server
	metricsServer := a.metricsServer
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if metricsServer != nil {
		go func() {
			a.logger.WithField("address", metricsServer.Addr).Info("Prometheus metrics endpoint started")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.WithField("error", err.Error()).Error("Metrics server stopped")
			}
		}()
	}

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return server.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones and releases resources
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	metricsServer := a.metricsServer
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			a.logger.WithField("error", err.Error()).Warn("Metrics server shutdown failed")
		}
	}

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if active := a.getActiveRequestCount(); active > 0 {
				a.logger.WithField("active_requests", active).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

// cleanupResources flushes exporters and closes both datastores
func (a *App) cleanupResources(ctx context.Context) error {
	a.logger.Info("Cleaning up resources...")

	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.exporters.Flush()

	var firstErr error
	if a.db != nil {
		if a.stopDBStats != nil {
			a.stopDBStats()
		}
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			firstErr = err
		}
	}

	if a.mongoClient != nil {
		a.logger.Info("Disconnecting from mongo")
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error disconnecting from mongo")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.logger.Info("Resource cleanup completed")
	return firstErr
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting SalesDesk API")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitMongo,
		a.InitMailer,
		a.InitRepositories,
		a.InitRootUser,
		a.InitServices,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetMongo() *mongo.Database {
	return a.mongoDB
}

func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) GetUserRepository() domain.UserRepository {
	return a.userRepo
}

func (a *App) GetAccountRepository() domain.AccountRepository {
	return a.accountRepo
}

func (a *App) GetProgressRepository() domain.ProgressRepository {
	return a.progressRepo
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout).Info("Shutdown timeout configured")
}

// GetShutdownContext is cancelled when shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and refuses new ones once shutdown starts
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
