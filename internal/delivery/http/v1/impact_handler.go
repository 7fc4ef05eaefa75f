package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ImpactHandler struct {
	impactUC domain.ImpactUsecase
}

func NewImpactHandler(public *gin.RouterGroup, protected *gin.RouterGroup, impactUC domain.ImpactUsecase) {
	handler := &ImpactHandler{impactUC: impactUC}

	public.GET("/impacts", handler.List)

	protectedImpacts := protected.Group("/impacts")
	{
		protectedImpacts.POST("", handler.Create)
		protectedImpacts.PUT("/:id", handler.Update)
		protectedImpacts.DELETE("/:id", handler.Delete)
	}
}

type ImpactRequest struct {
	Value       string `json:"value" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *ImpactHandler) List(c *gin.Context) {
	impacts, err := h.impactUC.ListImpacts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Impact list", impacts)
}

func (h *ImpactHandler) Create(c *gin.Context) {
	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	impact := &domain.Impact{
		Value:       req.Value,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.impactUC.CreateImpact(c.Request.Context(), impact); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Impact created", impact)
}

func (h *ImpactHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	impact := &domain.Impact{
		ID:          id,
		Value:       req.Value,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.impactUC.UpdateImpact(c.Request.Context(), impact); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Impact updated", impact)
}

func (h *ImpactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.impactUC.DeleteImpact(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Impact deleted", nil)
}
