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

type NewsHandler struct {
	newsUC domain.NewsUsecase
}

func NewNewsHandler(public *gin.RouterGroup, protected *gin.RouterGroup, newsUC domain.NewsUsecase) {
	handler := &NewsHandler{newsUC: newsUC}

	public.GET("/news", handler.List)
	public.GET("/news/:id", handler.GetDetails)

	protectedNews := protected.Group("/news")
	{
		protectedNews.POST("", handler.Create)
		protectedNews.PUT("/:id", handler.Update)
		protectedNews.DELETE("/:id", handler.Delete)
	}
}

type ContentBlockRequest struct {
	Text    string `json:"text" binding:"required"`
	ImageID *int64 `json:"imageId"`
}

type NewsRequest struct {
	Title         string                `json:"title" binding:"required"`
	Date          *time.Time            `json:"date"`
	ContentBlocks []ContentBlockRequest `json:"content_blocks" binding:"required,min=1"`
}

func (r *NewsRequest) toArticle(id int64) *domain.NewsArticle {
	blocks := make([]domain.ContentBlock, 0, len(r.ContentBlocks))
	for _, b := range r.ContentBlocks {
		blocks = append(blocks, domain.ContentBlock{Text: b.Text, ImageID: b.ImageID})
	}
	article := &domain.NewsArticle{
		ID:            id,
		Title:         r.Title,
		ContentBlocks: blocks,
	}
	if r.Date != nil {
		article.Date = *r.Date
	}
	return article
}

func (h *NewsHandler) List(c *gin.Context) {
	articles, err := h.newsUC.ListArticles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News list", articles)
}

func (h *NewsHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	article, err := h.newsUC.GetArticle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News details", article)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	article := req.toArticle(0)
	if err := h.newsUC.CreateArticle(c.Request.Context(), article); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "News article created", article)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	article := req.toArticle(id)
	if err := h.newsUC.UpdateArticle(c.Request.Context(), article); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News article updated", article)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.newsUC.DeleteArticle(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News article deleted", nil)
}
