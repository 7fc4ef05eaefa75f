package v1

import (
	"net/http"
	"strconv"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(public *gin.RouterGroup, protected *gin.RouterGroup, contactUC domain.ContactUsecase, formLimiter gin.HandlerFunc) {
	handler := &ContactHandler{contactUC: contactUC}

	public.GET("/contact-infos", handler.ListInfos)
	public.POST("/contact-messages", formLimiter, handler.SubmitMessage)

	protectedMessages := protected.Group("/contact-messages")
	{
		protectedMessages.GET("", handler.ListMessages)
		protectedMessages.PATCH("/:id/read", handler.MarkRead)
		protectedMessages.DELETE("/:id", handler.DeleteMessage)
	}

	protectedInfos := protected.Group("/contact-infos")
	{
		protectedInfos.POST("", handler.CreateInfo)
		protectedInfos.PUT("/:id", handler.UpdateInfo)
		protectedInfos.DELETE("/:id", handler.DeleteInfo)
	}
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactInfoRequest struct {
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	MapLink *string `json:"maplink"`
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactUC.SubmitMessage(c.Request.Context(), msg); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUC.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact messages", messages)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.contactUC.MarkMessageRead(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message marked as read", nil)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.contactUC.DeleteMessage(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message deleted", nil)
}

func (h *ContactHandler) ListInfos(c *gin.Context) {
	infos, err := h.contactUC.ListInfos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info", infos)
}

func (h *ContactHandler) CreateInfo(c *gin.Context) {
	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info := &domain.ContactInfo{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		MapLink: req.MapLink,
	}
	if err := h.contactUC.CreateInfo(c.Request.Context(), info); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact info created", info)
}

func (h *ContactHandler) UpdateInfo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info := &domain.ContactInfo{
		ID:      id,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		MapLink: req.MapLink,
	}
	if err := h.contactUC.UpdateInfo(c.Request.Context(), info); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info updated", info)
}

func (h *ContactHandler) DeleteInfo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.contactUC.DeleteInfo(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact info deleted", nil)
}
