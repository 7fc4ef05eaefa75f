package v1

import (
	"net/http"
	"time"

	"health-research-cms/config"
	"health-research-cms/internal/delivery/http/middleware"
	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	AuthUC        domain.AuthUsecase
	UploadUC      domain.UploadUsecase
	NewsUC        domain.NewsUsecase
	EventUC       domain.EventUsecase
	ProjectUC     domain.ProjectUsecase
	PublicationUC domain.PublicationUsecase
	TeamMemberUC  domain.TeamMemberUsecase
	PartnerUC     domain.PartnerUsecase
	ImpactUC      domain.ImpactUsecase
	ContactUC     domain.ContactUsecase
	TokenIssuer   *auth.TokenIssuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// CORS must run before anything that can abort the request
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	applyLimiter := middleware.RateLimitMiddleware(
		middleware.ApplyRateLimitConfig(deps.Config.RateLimitApplyThreshold, window))
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig())

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenIssuer, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
		NewVacancyHandler(v1, protected, deps.VacancyUC)
		NewApplicationHandler(v1, protected, deps.ApplicationUC, applyLimiter)
		NewUploadHandler(v1, deps.UploadUC, applyLimiter)
		NewNewsHandler(v1, protected, deps.NewsUC)
		NewEventHandler(v1, protected, deps.EventUC)
		NewProjectHandler(v1, protected, deps.ProjectUC)
		NewPublicationHandler(v1, protected, deps.PublicationUC)
		NewTeamMemberHandler(v1, protected, deps.TeamMemberUC)
		NewPartnerHandler(v1, protected, deps.PartnerUC)
		NewImpactHandler(v1, protected, deps.ImpactUC)
		NewContactHandler(v1, protected, deps.ContactUC, applyLimiter)
	}

	return r
}
