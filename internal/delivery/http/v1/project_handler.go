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

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.List)
	public.GET("/projects/:id", handler.GetDetails)

	protectedProjects := protected.Group("/projects")
	{
		protectedProjects.POST("", handler.Create)
		protectedProjects.PUT("/:id", handler.Update)
		protectedProjects.DELETE("/:id", handler.Delete)
	}
}

type ProjectRequest struct {
	Title         string     `json:"title" binding:"required"`
	Summary       string     `json:"summary"`
	Description   string     `json:"description"`
	ProjectStatus string     `json:"projectStatus"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	ImageID       *int64     `json:"imageId"`
}

func (r *ProjectRequest) toProject(id int64) *domain.Project {
	return &domain.Project{
		ID:            id,
		Title:         r.Title,
		Summary:       r.Summary,
		Description:   r.Description,
		ProjectStatus: r.ProjectStatus,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		ImageID:       r.ImageID,
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project list", projects)
}

func (h *ProjectHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	project, err := h.projectUC.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project details", project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := req.toProject(0)
	if err := h.projectUC.CreateProject(c.Request.Context(), project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := req.toProject(id)
	if err := h.projectUC.UpdateProject(c.Request.Context(), project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.projectUC.DeleteProject(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}
