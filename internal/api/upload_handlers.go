package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// UploadFile accepts a multipart file and stores it on disk
func (h *Handler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondBadRequest(c, err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer f.Close()

	stored, err := h.uploads.Save(fileHeader.Filename, f)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		ID:     stored.ID,
		URL:    stored.URL,
		Format: stored.Format,
		Size:   stored.Size,
	})
}

// DeleteFile removes an uploaded file by id
func (h *Handler) DeleteFile(c *gin.Context) {
	if err := h.uploads.Delete(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "File deleted",
	})
}
