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

	"github.com/aussiebroadwan/gearbox/internal/account/cache"
	httpapi "github.com/aussiebroadwan/gearbox/internal/account/http"
	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	secretSize = 32
)

// Application encapsulates the account service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db          store.Store
	redis       redis.UniversalClient // nil when running without redis
	codec       *jwtx.HS256
	hasher      cryptox.PasswordHasher
	mailer      mailx.Mailer
	revocations cache.Revocations
	throttle        cache.Throttle
	confirmThrottle cache.Throttle

	// Services
	registrationService  *service.RegistrationService
	verificationService  *service.VerificationService
	loginService         *service.LoginService
	passwordResetService *service.PasswordResetService
	sessionService       *service.SessionService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "account-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSecrets(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initCache(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("account service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			// The listener never came up or died; still stop the worker and
			// release the database and redis.
			if shutdownErr := app.Shutdown(); shutdownErr != nil {
				app.logger.Error("cleanup after server failure", "error", shutdownErr)
			}
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

// Shutdown drains the HTTP server, stops the worker and closes connections.
// Only call it after Run has started the worker.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down account service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("account service stopped")
	return nil
}

// initSecrets loads the pepper and the token signing secret, generating
// either file on first start.
func (app *Application) initSecrets() error {
	pepper, err := cryptox.LoadOrGenerateKey(app.cfg.PepperFile, secretSize)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.PasswordHasher{Pepper: pepper}

	secret := app.cfg.JWTSecret
	if secret == "" {
		if secret, err = cryptox.LoadOrGenerateKey(app.cfg.JWTSecretFile, secretSize); err != nil {
			return fmt.Errorf("failed to load jwt secret: %w", err)
		}
	}
	if app.codec, err = jwtx.NewHS256([]byte(secret), app.cfg.Issuer); err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(dsn)
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

// initCache picks redis when configured, otherwise in-process state that is
// only correct for a single instance.
func (app *Application) initCache() error {
	throttleCfg := cache.ThrottleConfig{
		Window:      app.cfg.ResetThrottleWindow,
		MaxAttempts: app.cfg.ResetThrottleMax,
	}
	confirmCfg := cache.ThrottleConfig{
		Window:      app.cfg.ResetConfirmWindow,
		MaxAttempts: app.cfg.ResetConfirmMax,
	}

	if app.cfg.RedisAddr == "" {
		app.revocations = cache.NewMemoryRevocations()
		if throttleCfg.MaxAttempts > 0 {
			app.throttle = cache.NewMemoryThrottle(throttleCfg)
		}
		if confirmCfg.MaxAttempts > 0 {
			app.confirmThrottle = cache.NewMemoryThrottle(confirmCfg)
		}
		app.logger.Warn("redis not configured, using in-memory denylist and throttle")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx, client); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	app.redis = client
	app.revocations = cache.NewRedisRevocations(client)
	if throttleCfg.MaxAttempts > 0 {
		app.throttle = cache.NewRedisThrottle(client, throttleCfg)
	}
	if confirmCfg.MaxAttempts > 0 {
		app.confirmThrottle = cache.NewRedisThrottle(client, confirmCfg)
	}
	app.logger.Info("redis connected", "addr", app.cfg.RedisAddr)
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mailer = mailx.Log{}
		app.logger.Warn("SMTP_HOST not set, emails will be logged and not sent")
		return
	}
	app.mailer = mailx.NewSMTP(mailx.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	})
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	tokens := &service.TokenIssuer{
		Codec:           app.codec,
		Issuer:          app.cfg.Issuer,
		AccessTTL:       app.cfg.AccessTTL,
		RefreshTTL:      app.cfg.RefreshTTL,
		VerificationTTL: app.cfg.VerificationTTL,
	}

	app.registrationService = &service.RegistrationService{
		Store:   app.db,
		Hasher:  app.hasher,
		Tokens:  tokens,
		Mailer:  app.mailer,
		SiteURL: app.cfg.SiteURL,
	}
	app.verificationService = &service.VerificationService{
		Store:   app.db,
		Tokens:  tokens,
		Mailer:  app.mailer,
		SiteURL: app.cfg.SiteURL,
	}
	app.loginService = &service.LoginService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: tokens,
	}
	app.passwordResetService = &service.PasswordResetService{
		Store:    app.db,
		Hasher:   app.hasher,
		Mailer:   app.mailer,
		CodeTTL:  app.cfg.ResetCodeTTL,
		Throttle: app.throttle,

		ConfirmThrottle: app.confirmThrottle,
	}
	app.sessionService = &service.SessionService{
		Store:       app.db,
		Tokens:      tokens,
		Revocations: app.revocations,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		app.revocations,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.RegistrationService = app.registrationService
	router.VerificationService = app.verificationService
	router.LoginService = app.loginService
	router.PasswordResetService = app.passwordResetService
	router.SessionService = app.sessionService
	if app.redis != nil {
		client := app.redis
		router.CacheCheck = func(ctx context.Context) error { return cache.Ping(ctx, client) }
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
