package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TeamMemberHandler struct {
	memberUC domain.TeamMemberUsecase
}

func NewTeamMemberHandler(public *gin.RouterGroup, protected *gin.RouterGroup, memberUC domain.TeamMemberUsecase) {
	handler := &TeamMemberHandler{memberUC: memberUC}

	public.GET("/team-members", handler.List)
	public.GET("/team-members/:id", handler.GetDetails)

	protectedMembers := protected.Group("/team-members")
	{
		protectedMembers.POST("", handler.Create)
		protectedMembers.PUT("/:id", handler.Update)
		protectedMembers.DELETE("/:id", handler.Delete)
	}
}

type TeamMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
	Quote    *string `json:"quote"`
	ImageID  *int64  `json:"imageId"`
}

func (r *TeamMemberRequest) toMember(id int64) *domain.TeamMember {
	return &domain.TeamMember{
		ID:       id,
		Name:     r.Name,
		Position: r.Position,
		Email:    r.Email,
		Bio:      r.Bio,
		Quote:    r.Quote,
		ImageID:  r.ImageID,
	}
}

func (h *TeamMemberHandler) List(c *gin.Context) {
	members, err := h.memberUC.ListMembers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Team member list", members)
}

func (h *TeamMemberHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	member, err := h.memberUC.GetMember(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Team member details", member)
}

func (h *TeamMemberHandler) Create(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	member := req.toMember(0)
	if err := h.memberUC.CreateMember(c.Request.Context(), member); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Team member created", member)
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	member := req.toMember(id)
	if err := h.memberUC.UpdateMember(c.Request.Context(), member); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Team member updated", member)
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.memberUC.DeleteMember(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Team member deleted", nil)
}
