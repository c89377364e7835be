package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"

	_ "github.com/aussiebroadwan/gearbox/api/account" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	denylist     httpx.Denylist
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// CacheCheck reports cache health on /readyz. Nil means no external cache.
	CacheCheck func(ctx context.Context) error

	RegistrationService  *service.RegistrationService
	VerificationService  *service.VerificationService
	LoginService         *service.LoginService
	PasswordResetService *service.PasswordResetService
	SessionService       *service.SessionService
}

func NewRouter(
	verifier jwtx.Verifier,
	denylist httpx.Denylist,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		denylist:     denylist,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSessions()
	r.registerPasswordReset()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Gearbox Account Service API
//	@version		0.1.0
//	@description	Account lifecycle for the gearbox back office: registration, email verification, login, logout and password reset.
//	@description
//	@description				Access tokens are HS256 JWTs. Refresh tokens are opaque and rotate on every use.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/gearbox
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /register - strict, signups are cheap to abuse
	r.Mux.Handle("POST /register",
		httpx.Chain(&RegisterHandler{RegistrationService: r.RegistrationService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	verify := &VerifyHandler{VerificationService: r.VerificationService}

	// GET /verify - moderate, users click the link from their inbox
	r.Mux.Handle("GET /verify",
		httpx.Chain(http.HandlerFunc(verify.HandleVerify),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /verify/resend - strict per IP and email, each hit sends mail
	r.Mux.Handle("POST /verify/resend",
		httpx.Chain(http.HandlerFunc(verify.HandleResend),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// GET /me - authenticated
	r.Mux.Handle("GET /me",
		httpx.Chain(&MeHandler{SessionService: r.SessionService},
			httpx.Authenticate(r.verifier, r.denylist),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSessions() {
	// POST /login - strict per IP and email to slow down guessing
	r.Mux.Handle("POST /login",
		httpx.Chain(&LoginHandler{LoginService: r.LoginService},
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /logout - bearer is optional, so no Authenticate here
	r.Mux.Handle("POST /logout",
		httpx.Chain(&LogoutHandler{SessionService: r.SessionService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /token/refresh - moderate
	r.Mux.Handle("POST /token/refresh",
		httpx.Chain(&RefreshHandler{SessionService: r.SessionService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	h := &ResetHandler{PasswordResetService: r.PasswordResetService}

	// Both steps are strict per address. Guessing a code is capped per email by
	// the service's confirm throttle, which does not depend on client headers.
	r.Mux.Handle("POST /reset/request",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /reset/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.CacheCheck),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
