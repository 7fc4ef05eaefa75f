package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	partnerUC domain.PartnerUsecase
}

func NewPartnerHandler(public *gin.RouterGroup, protected *gin.RouterGroup, partnerUC domain.PartnerUsecase) {
	handler := &PartnerHandler{partnerUC: partnerUC}

	public.GET("/partners", handler.List)

	protectedPartners := protected.Group("/partners")
	{
		protectedPartners.POST("", handler.Create)
		protectedPartners.PUT("/:id", handler.Update)
		protectedPartners.DELETE("/:id", handler.Delete)
	}
}

type PartnerRequest struct {
	Name       string `json:"name" binding:"required"`
	WebsiteURL string `json:"websiteUrl"`
	LogoID     *int64 `json:"logoId"`
}

func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.partnerUC.ListPartners(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Partner list", partners)
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	partner := &domain.Partner{
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
		LogoID:     req.LogoID,
	}
	if err := h.partnerUC.CreatePartner(c.Request.Context(), partner); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Partner created", partner)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	partner := &domain.Partner{
		ID:         id,
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
		LogoID:     req.LogoID,
	}
	if err := h.partnerUC.UpdatePartner(c.Request.Context(), partner); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Partner updated", partner)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.partnerUC.DeletePartner(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Partner deleted", nil)
}
