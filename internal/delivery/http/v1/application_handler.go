package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, applyLimiter gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Submission is public; it is the one write endpoint visitors reach.
	public.POST("/applications", applyLimiter, handler.Apply)

	protectedApps := protected.Group("/applications")
	{
		protectedApps.GET("", handler.List)
		protectedApps.GET("/:id", handler.GetDetails)
		protectedApps.PATCH("/:id/qualification", handler.Assess)
		protectedApps.DELETE("/:id", handler.Delete)
	}
	protected.GET("/vacancies/:id/applications", handler.ListByVacancy)
}

type ApplyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	CoverLetter *string `json:"coverLetter"`
	VacancyID   int64   `json:"vacancy" binding:"required"`
	ResumeID    *int64  `json:"resume"`
}

type AssessRequest struct {
	Qualification string `json:"qualification" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := &domain.Application{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CoverLetter: req.CoverLetter,
		VacancyID:   &req.VacancyID,
		ResumeID:    req.ResumeID,
	}

	if err := h.applicationUC.Apply(c.Request.Context(), app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationUC.ListApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application list", apps)
}

func (h *ApplicationHandler) ListByVacancy(c *gin.Context) {
	vacancyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	apps, err := h.applicationUC.ListByVacancy(c.Request.Context(), vacancyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications for vacancy", apps)
}

func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	app, err := h.applicationUC.GetApplicationDetail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", app)
}

func (h *ApplicationHandler) Assess(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.AssessApplication(c.Request.Context(), id, req.Qualification); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application assessed", nil)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.applicationUC.DeleteApplication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}
