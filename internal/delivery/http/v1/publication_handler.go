package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	publicationUC domain.PublicationUsecase
}

func NewPublicationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, publicationUC domain.PublicationUsecase) {
	handler := &PublicationHandler{publicationUC: publicationUC}

	public.GET("/publications", handler.List)
	public.GET("/publications/:id", handler.GetDetails)

	protectedPubs := protected.Group("/publications")
	{
		protectedPubs.POST("", handler.Create)
		protectedPubs.PUT("/:id", handler.Update)
		protectedPubs.DELETE("/:id", handler.Delete)
	}
}

type PublicationRequest struct {
	Title    string  `json:"title" binding:"required"`
	Authors  string  `json:"authors" binding:"required"`
	Journal  string  `json:"journal"`
	Link     string  `json:"link"`
	Abstract *string `json:"abstract"`
	ImageID  *int64  `json:"imageId"`
}

func (r *PublicationRequest) toPublication(id int64) *domain.Publication {
	return &domain.Publication{
		ID:       id,
		Title:    r.Title,
		Authors:  r.Authors,
		Journal:  r.Journal,
		Link:     r.Link,
		Abstract: r.Abstract,
		ImageID:  r.ImageID,
	}
}

func (h *PublicationHandler) List(c *gin.Context) {
	pubs, err := h.publicationUC.ListPublications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Publication list", pubs)
}

func (h *PublicationHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	pub, err := h.publicationUC.GetPublication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Publication details", pub)
}

func (h *PublicationHandler) Create(c *gin.Context) {
	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pub := req.toPublication(0)
	if err := h.publicationUC.CreatePublication(c.Request.Context(), pub); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Publication created", pub)
}

func (h *PublicationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pub := req.toPublication(id)
	if err := h.publicationUC.UpdatePublication(c.Request.Context(), pub); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Publication updated", pub)
}

func (h *PublicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.publicationUC.DeletePublication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Publication deleted", nil)
}
