package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/quollsec/scanhub/internal/api/http"
	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/internal/api/store/drivers/sqlite"
	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/quollsec/scanhub/pkg/jwtx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.EdDSASigner

	registerService    *service.RegisterService
	loginService       *service.LoginService
	otpService         *service.OTPService
	tokenService       *service.TokenService
	passwordService    *service.PasswordService
	mfaService         *service.MFAService
	userService        *service.UserService
	tenantService      *service.TenantService
	tenantUserService  *service.TenantUserService
	groupService       *service.GroupService
	targetService      *service.TargetService
	projectService     *service.ProjectService
	riskService        *service.RiskService
	scanService        *service.ScanService
	riskSummaryService *service.RiskSummaryService
	housekeeping       *service.HousekeepingService

	server *http.Server
	router *httpapi.Router

	cancelBackground context.CancelFunc
}

// New creates an Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "scanhub-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Signing keys are ephemeral: tokens do not survive a restart.
	signer, err := jwtx.NewEdDSASigner("primary")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	// Start housekeeping in the background
	bgCtx, cancel := context.WithCancel(slogx.WithContext(context.Background(), app.logger))
	app.cancelBackground = cancel
	go app.housekeeping.Run(bgCtx)

	app.logger.Info("api service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.cancelBackground != nil {
		app.cancelBackground()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Store:  app.db,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.AccessTokenTTL,
	}

	app.registerService = &service.RegisterService{
		Store:  app.db,
		OTPTTL: app.cfg.OTPTTL,
	}
	app.loginService = &service.LoginService{Store: app.db, Tokens: app.tokenService}
	app.otpService = &service.OTPService{Store: app.db, Tokens: app.tokenService}
	app.passwordService = &service.PasswordService{Store: app.db}
	app.mfaService = &service.MFAService{Store: app.db, Issuer: app.cfg.Issuer}
	app.userService = &service.UserService{Store: app.db}
	app.tenantService = &service.TenantService{Store: app.db}
	app.tenantUserService = &service.TenantUserService{Store: app.db}
	app.groupService = &service.GroupService{Store: app.db}
	app.targetService = &service.TargetService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.riskService = &service.RiskService{Store: app.db}
	app.scanService = &service.ScanService{Store: app.db}
	app.riskSummaryService = &service.RiskSummaryService{Store: app.db}

	app.housekeeping = &service.HousekeepingService{
		Store:    app.db,
		Interval: app.cfg.HousekeepingInterval,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.RegisterService = app.registerService
	router.LoginService = app.loginService
	router.OTPService = app.otpService
	router.PasswordService = app.passwordService
	router.MFAService = app.mfaService
	router.UserService = app.userService
	router.TenantService = app.tenantService
	router.TenantUserService = app.tenantUserService
	router.GroupService = app.groupService
	router.TargetService = app.targetService
	router.ProjectService = app.projectService
	router.RiskService = app.riskService
	router.ScanService = app.scanService
	router.RiskSummaryService = app.riskSummaryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
