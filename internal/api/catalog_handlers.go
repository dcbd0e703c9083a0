package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Expense types

func (h *Handler) ListExpenseTypes(c *gin.Context) {
	types, err := h.service.ListExpenseTypes(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *Handler) CreateExpenseType(c *gin.Context) {
	var req models.CreateExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	expenseType, err := h.service.CreateExpenseType(c.Request.Context(), actorEmail(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expenseType)
}

func (h *Handler) GetExpenseType(c *gin.Context) {
	expenseType, err := h.service.GetExpenseType(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenseType)
}

func (h *Handler) UpdateExpenseType(c *gin.Context) {
	var req models.UpdateExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	expenseType, err := h.service.UpdateExpenseType(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenseType)
}

func (h *Handler) DeleteExpenseType(c *gin.Context) {
	if err := h.service.DeleteExpenseType(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Expense type deleted",
	})
}

// App settings

func (h *Handler) ListSettings(c *gin.Context) {
	settings, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) GetSetting(c *gin.Context) {
	setting, err := h.service.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpsertSetting creates a setting or replaces the value stored under its key
func (h *Handler) UpsertSetting(c *gin.Context) {
	var req models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	setting, err := h.service.UpsertSetting(c.Request.Context(), actorEmail(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

func (h *Handler) DeleteSetting(c *gin.Context) {
	if err := h.service.DeleteSetting(c.Request.Context(), c.Param("key")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Setting deleted",
	})
}

// Print templates

func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *Handler) CreateTemplate(c *gin.Context) {
	var req models.CreatePrintTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	template, err := h.service.CreateTemplate(c.Request.Context(), actorEmail(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (h *Handler) GetTemplate(c *gin.Context) {
	template, err := h.service.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *Handler) UpdateTemplate(c *gin.Context) {
	var req models.UpdatePrintTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	template, err := h.service.UpdateTemplate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// SetDefaultTemplate marks a template as the default for its type,
// clearing the flag from any other template of the same type.
func (h *Handler) SetDefaultTemplate(c *gin.Context) {
	template, err := h.service.SetDefaultTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	if err := h.service.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Template deleted",
	})
}
