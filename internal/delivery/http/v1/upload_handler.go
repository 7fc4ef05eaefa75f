package v1

import (
	"io"
	"net/http"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
}

// Applicants attach resumes before they have any session, so upload is
// public, guarded by the same rate limit as the application form.
func NewUploadHandler(public *gin.RouterGroup, uploadUC domain.UploadUsecase, limiter gin.HandlerFunc) {
	handler := &UploadHandler{uploadUC: uploadUC}
	public.POST("/upload", limiter, handler.Upload)
}

// Upload accepts multipart files under the "files" field and answers
// with a bare JSON array of the stored descriptors, the shape the
// frontend upload widget consumes.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.BadRequest("Invalid multipart form"))
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.Error(apperror.BadRequest("No files provided"))
		return
	}

	uploads := make([]domain.Upload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read uploaded file"))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read uploaded file"))
			return
		}

		uploads = append(uploads, domain.Upload{
			Filename: fh.Filename,
			Mime:     fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	stored, err := h.uploadUC.UploadFiles(c.Request.Context(), uploads)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stored)
}
