package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// ExportBackup streams a serialized backup as a file download.
// Query parameters: format (json|sql|xlsx, default json) and month (YYYY-MM).
func (h *Handler) ExportBackup(c *gin.Context) {
	file, err := h.service.ExportBackup(c.Request.Context(), c.Query("format"), c.Query("month"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// EmailBackup generates a backup and sends it to the given address
func (h *Handler) EmailBackup(c *gin.Context) {
	var req models.EmailBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	if err := h.service.EmailBackup(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: fmt.Sprintf("Backup sent to %s", req.Email),
	})
}
