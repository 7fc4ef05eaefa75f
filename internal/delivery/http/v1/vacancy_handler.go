package v1

import (
	"net/http"
	"strconv"
	"time"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	publicVacancies := public.Group("/vacancies")
	{
		publicVacancies.GET("", handler.List)
		publicVacancies.GET("/:id", handler.GetDetails)
	}

	protectedVacancies := protected.Group("/vacancies")
	{
		protectedVacancies.POST("", handler.Create)
		protectedVacancies.PUT("/:id", handler.Update)
		protectedVacancies.DELETE("/:id", handler.Delete)
	}
}

type VacancyRequest struct {
	Title              string     `json:"title" binding:"required"`
	Location           string     `json:"location"`
	Department         string     `json:"department"`
	JobType            string     `json:"jobType"`
	Description        string     `json:"description"`
	PostedAt           *time.Time `json:"postedAt"`
	Deadline           *time.Time `json:"deadline"`
	RequiredCandidates int        `json:"requiredCandidates"`
	VacancyStatus      string     `json:"vacancyStatus"`
}

// vacancyView is the API shape of a vacancy: the stored record plus the
// effective status computed at response time. Clients display
// EffectiveStatus; VacancyStatus is the persisted field the reconciler
// keeps in sync.
type vacancyView struct {
	domain.Vacancy
	EffectiveStatus string `json:"effectiveStatus"`
}

func toVacancyView(v domain.Vacancy, now time.Time) vacancyView {
	return vacancyView{Vacancy: v, EffectiveStatus: v.EffectiveStatus(now)}
}

func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListVacancies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	now := time.Now()
	views := make([]vacancyView, 0, len(vacancies))
	for _, v := range vacancies {
		views = append(views, toVacancyView(v, now))
	}

	response.Success(c, http.StatusOK, "Vacancy list", views)
}

func (h *VacancyHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	vacancy, err := h.vacancyUC.GetVacancyDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy details", toVacancyView(*vacancy, time.Now()))
}

func (h *VacancyHandler) Create(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vacancy := &domain.Vacancy{
		Title:              req.Title,
		Location:           req.Location,
		Department:         req.Department,
		JobType:            req.JobType,
		Description:        req.Description,
		Deadline:           req.Deadline,
		RequiredCandidates: req.RequiredCandidates,
		VacancyStatus:      req.VacancyStatus,
	}
	if req.PostedAt != nil {
		vacancy.PostedAt = *req.PostedAt
	}

	if err := h.vacancyUC.CreateVacancy(c.Request.Context(), vacancy); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy created", toVacancyView(*vacancy, time.Now()))
}

func (h *VacancyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vacancy := &domain.Vacancy{
		ID:                 id,
		Title:              req.Title,
		Location:           req.Location,
		Department:         req.Department,
		JobType:            req.JobType,
		Description:        req.Description,
		Deadline:           req.Deadline,
		RequiredCandidates: req.RequiredCandidates,
		VacancyStatus:      req.VacancyStatus,
	}
	if req.PostedAt != nil {
		vacancy.PostedAt = *req.PostedAt
	}

	if err := h.vacancyUC.UpdateVacancy(c.Request.Context(), vacancy); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy updated", toVacancyView(*vacancy, time.Now()))
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.vacancyUC.DeleteVacancy(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}
