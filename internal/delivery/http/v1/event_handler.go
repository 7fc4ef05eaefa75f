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

type EventHandler struct {
	eventUC domain.EventUsecase
}

func NewEventHandler(public *gin.RouterGroup, protected *gin.RouterGroup, eventUC domain.EventUsecase) {
	handler := &EventHandler{eventUC: eventUC}

	public.GET("/events", handler.List)
	public.GET("/events/:id", handler.GetDetails)

	protectedEvents := protected.Group("/events")
	{
		protectedEvents.POST("", handler.Create)
		protectedEvents.PUT("/:id", handler.Update)
		protectedEvents.DELETE("/:id", handler.Delete)
	}
}

type EventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Mode        string     `json:"mode" binding:"required"`
	EventStatus string     `json:"eventStatus"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `json:"location"`
	ImageID     *int64     `json:"imageId"`
}

func (r *EventRequest) toEvent(id int64) *domain.Event {
	return &domain.Event{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Mode:        r.Mode,
		EventStatus: r.EventStatus,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		ImageID:     r.ImageID,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventUC.ListEvents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event list", events)
}

func (h *EventHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	event, err := h.eventUC.GetEvent(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event details", event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	event := req.toEvent(0)
	if err := h.eventUC.CreateEvent(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Event created", event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	event := req.toEvent(id)
	if err := h.eventUC.UpdateEvent(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event updated", event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.eventUC.DeleteEvent(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event deleted", nil)
}
