package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4utre/expense-tracker-app/internal/models"
)

func (h *Handler) ListDrivers(c *gin.Context) {
	drivers, err := h.service.ListDrivers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req models.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	driver, err := h.service.CreateDriver(c.Request.Context(), actorEmail(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, driver)
}

func (h *Handler) GetDriver(c *gin.Context) {
	driver, err := h.service.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	var req models.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	driver, err := h.service.UpdateDriver(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	if err := h.service.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Driver deleted",
	})
}

// BulkUpdateRates updates rates on the selected drivers and recalculates the
// amounts of their hour-based expenses.
func (h *Handler) BulkUpdateRates(c *gin.Context) {
	var req models.BulkRateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	if err := h.service.BulkUpdateRates(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Rates updated",
	})
}
