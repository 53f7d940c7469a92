package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/jwtx"
	"github.com/quollsec/scanhub/pkg/slogx"

	_ "github.com/quollsec/scanhub/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	RegisterService    *service.RegisterService
	LoginService       *service.LoginService
	OTPService         *service.OTPService
	PasswordService    *service.PasswordService
	MFAService         *service.MFAService
	UserService        *service.UserService
	TenantService      *service.TenantService
	TenantUserService  *service.TenantUserService
	GroupService       *service.GroupService
	TargetService      *service.TargetService
	ProjectService     *service.ProjectService
	RiskService        *service.RiskService
	ScanService        *service.ScanService
	RiskSummaryService *service.RiskSummaryService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerTenantUsers()
	r.registerGroups()
	r.registerTargets()
	r.registerProjects()
	r.registerScans()
	r.registerRiskSummaries()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ScanHub API
//	@version		0.1.0
//	@description	Multi-tenant security scanning backend: account registration with email OTP verification, tenant provisioning, group/permission management, and CRUD for targets, projects, findings and scans.
//
//	@contact.name				QuollSec Engineering
//	@contact.url				https://github.com/quollsec/scanhub
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

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(&RegisterHandler{RegisterService: r.RegisterService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{LoginService: r.LoginService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-otp - strict rate limit by IP (prevent code guessing)
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(&VerifyOTPHandler{OTPService: r.OTPService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /change-password - authenticated, strict limit by user
	r.Mux.Handle("POST /v1/auth/change-password",
		httpx.Chain(&ChangePasswordHandler{PasswordService: r.PasswordService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	users := &UsersHandler{UserService: r.UserService}
	mfa := &MFAHandler{MFAService: r.MFAService}
	tenants := &TenantsHandler{TenantService: r.TenantService}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(users.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/users/me",
		httpx.Chain(http.HandlerFunc(users.HandleUpdateMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/users/me/mfa/enroll",
		httpx.Chain(http.HandlerFunc(mfa.HandleEnroll),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Strict limit on confirm to prevent brute force of TOTP codes
	r.Mux.Handle("POST /v1/users/me/mfa/confirm",
		httpx.Chain(http.HandlerFunc(mfa.HandleConfirm),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/tenants/me",
		httpx.Chain(http.HandlerFunc(tenants.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTenantUsers() {
	h := &TenantUsersHandler{
		TenantService:     r.TenantService,
		TenantUserService: r.TenantUserService,
	}

	r.Mux.Handle("POST /v1/tenant-users", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tenant-users", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/tenant-users/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/tenant-users/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tenant-users/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerGroups() {
	h := &GroupsHandler{GroupService: r.GroupService}
	perms := &PermissionsHandler{GroupService: r.GroupService}

	r.Mux.Handle("POST /v1/groups", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/groups", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/groups/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/groups/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/groups/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/permissions", r.secured(perms.ServeHTTP, httpx.LenientLimit))
}

func (r *Router) registerTargets() {
	h := &TargetsHandler{TargetService: r.TargetService}

	r.Mux.Handle("POST /v1/targets", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/targets", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/targets/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/targets/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/targets/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{
		TenantService:  r.TenantService,
		ProjectService: r.ProjectService,
	}
	findings := &FindingsHandler{RiskService: r.RiskService}

	r.Mux.Handle("POST /v1/projects", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/projects/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/projects/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/projects/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/projects/{id}/risks", r.secured(findings.HandleCreateRisk, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}/risks", r.secured(findings.HandleListRisks, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/risks/{id}", r.secured(findings.HandleDeleteRisk, httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/projects/{id}/vulnerabilities", r.secured(findings.HandleCreateVulnerability, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}/vulnerabilities", r.secured(findings.HandleListVulnerabilities, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/vulnerabilities/{id}", r.secured(findings.HandleDeleteVulnerability, httpx.ModerateLimit))
}

func (r *Router) registerScans() {
	h := &ScansHandler{ScanService: r.ScanService}

	r.Mux.Handle("POST /v1/projects/{id}/scans", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}/scans", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/scans/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/scans/{id}/start", r.secured(h.HandleStart, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/scans/{id}/finish", r.secured(h.HandleFinish, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/scans/{id}/fail", r.secured(h.HandleFail, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/scans/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerRiskSummaries() {
	h := &RiskSummariesHandler{
		TenantService:      r.TenantService,
		RiskSummaryService: r.RiskSummaryService,
	}

	r.Mux.Handle("POST /v1/risk-summaries", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/risk-summaries", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/risk-summaries/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/risk-summaries/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// secured wraps a handler func with authentication and a per-user rate limit.
func (r *Router) secured(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(fn,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}
