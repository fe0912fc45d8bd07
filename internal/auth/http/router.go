package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/goalpost/internal/auth/metrics"
	"github.com/aussiebroadwan/goalpost/internal/auth/service"
	"github.com/aussiebroadwan/goalpost/internal/auth/store"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/aussiebroadwan/goalpost/pkg/slogx"

	_ "github.com/aussiebroadwan/goalpost/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	runtimeNative = "native"
	runtimeEdge   = "edge"
)

// RouterConfig carries the session wiring decided at startup.
type RouterConfig struct {
	BuildVersion string
	Cookie       httpx.CookieConfig

	// GatewayPrefixes are guarded by the edge verifier before routing.
	GatewayPrefixes []string
	LoginPath       string

	Issuer *sessionx.Issuer
	Native sessionx.Verifier
	Edge   sessionx.Verifier

	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cfg       RouterConfig
	startTime time.Time
	logger    *slog.Logger
	store     store.Store

	AccountService *service.AccountService
}

func NewRouter(cfg RouterConfig, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		cfg:       cfg,
		startTime: time.Now(),
		logger:    logger,
		store:     st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.GatewayMiddleware(httpx.GatewayConfig{
			CookieName: cfg.Cookie.Name,
			Prefixes:   cfg.GatewayPrefixes,
			LoginPath:  cfg.LoginPath,
			Verifier:   cfg.Edge,
			Runtime:    runtimeEdge,
			Observe:    r.observeVerification(),
		}),
	}
	if cfg.Metrics != nil {
		// Innermost, so the mux's matched pattern is visible afterwards.
		r.middlewares = append(r.middlewares, cfg.Metrics.Instrument)
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerProfile()
	r.registerApp()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Goalpost Session Service API
//	@version		0.1.0
//	@description	Stateless session authentication. Signup and login set an HttpOnly cookie holding
//	@description	a token of the form base64url(payload).base64url(HMAC-SHA256(payload)).
//	@description
//	@description	The same token is accepted by the full runtime handlers and the edge gateway.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/goalpost
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session
//	@description				Session token set by /v1/signup or /v1/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) session() httpx.Middleware {
	return httpx.SessionMiddleware(httpx.SessionConfig{
		CookieName: r.cfg.Cookie.Name,
		Verifier:   r.cfg.Native,
		Runtime:    runtimeNative,
		Observe:    r.observeVerification(),
	})
}

func (r *Router) observeVerification() httpx.VerifyObserver {
	if r.cfg.Metrics == nil {
		return nil
	}
	return r.cfg.Metrics.ObserveVerification
}

func (r *Router) onIssued(flow string) {
	if r.cfg.Metrics != nil {
		r.cfg.Metrics.SessionIssued(flow)
	}
}

func (r *Router) registerSessions() {
	signup := &SignupHandler{Accounts: r.AccountService, Cookie: r.cfg.Cookie, OnIssued: r.onIssued}
	login := &LoginHandler{Accounts: r.AccountService, Cookie: r.cfg.Cookie, OnIssued: r.onIssued}

	// Login is keyed by IP plus the submitted email.
	r.Mux.Handle("POST /v1/signup",
		httpx.Chain(signup,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /v1/logout", LogoutHandler(r.cfg.Cookie))

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(SessionHandler),
			r.session(),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{Accounts: r.AccountService, Cookie: r.cfg.Cookie, OnIssued: r.onIssued}

	r.Mux.Handle("PATCH /v1/profile",
		httpx.Chain(h,
			r.session(),
			httpx.RateLimitByUID(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerApp() {
	// Everything under the gateway prefixes already passed the edge check.
	for _, prefix := range r.cfg.GatewayPrefixes {
		r.Mux.Handle("GET "+prefix, http.HandlerFunc(AppHandler))
	}
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.cfg.BuildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.cfg.BuildVersion, r.store, r.signerCheck))

	if r.cfg.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.cfg.Metrics.Handler())
	}
}
