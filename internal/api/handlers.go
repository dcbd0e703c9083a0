package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/service"
	"github.com/4utre/expense-tracker-app/internal/storage"
)

// Handler holds the API dependencies
type Handler struct {
	service service.Service
	uploads *storage.LocalStore
	logger  *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service, uploads *storage.LocalStore, logger *zap.Logger) *Handler {
	return &Handler{
		service: svc,
		uploads: uploads,
		logger:  logger,
	}
}

// SetupRoutes registers all API routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.Static("/uploads", h.uploads.Dir())

	api := router.Group("/api", NormalizeLegacyFields())

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", AuthMiddleware(), h.Me)

	protected := api.Group("", AuthMiddleware())

	drivers := protected.Group("/drivers")
	drivers.GET("", h.ListDrivers)
	drivers.POST("", h.CreateDriver)
	drivers.POST("/bulk-update-rates", h.BulkUpdateRates)
	drivers.GET("/:id", h.GetDriver)
	drivers.PUT("/:id", h.UpdateDriver)
	drivers.DELETE("/:id", h.DeleteDriver)

	expenses := protected.Group("/expenses")
	expenses.GET("", h.ListExpenses)
	expenses.POST("", h.CreateExpense)
	expenses.POST("/bulk-delete", h.BulkDeleteExpenses)
	expenses.POST("/bulk-restore", h.BulkRestoreExpenses)
	expenses.POST("/bulk-permanent-delete", h.BulkPermanentDeleteExpenses)
	expenses.GET("/:id", h.GetExpense)
	expenses.PUT("/:id", h.UpdateExpense)
	expenses.DELETE("/:id", h.DeleteExpense)
	expenses.POST("/:id/soft-delete", h.SoftDeleteExpense)
	expenses.POST("/:id/restore", h.RestoreExpense)

	employees := protected.Group("/employees")
	employees.GET("", h.ListEmployees)
	employees.POST("", h.CreateEmployee)
	employees.GET("/:id", h.GetEmployee)
	employees.PUT("/:id", h.UpdateEmployee)
	employees.DELETE("/:id", h.DeleteEmployee)

	types := protected.Group("/expense-types")
	types.GET("", h.ListExpenseTypes)
	types.POST("", h.CreateExpenseType)
	types.GET("/:id", h.GetExpenseType)
	types.PUT("/:id", h.UpdateExpenseType)
	types.DELETE("/:id", h.DeleteExpenseType)

	settings := protected.Group("/settings")
	settings.GET("", h.ListSettings)
	settings.POST("", h.UpsertSetting)
	settings.GET("/:key", h.GetSetting)
	settings.DELETE("/:key", h.DeleteSetting)

	templates := protected.Group("/print-templates")
	templates.GET("", h.ListTemplates)
	templates.POST("", h.CreateTemplate)
	templates.GET("/:id", h.GetTemplate)
	templates.PUT("/:id", h.UpdateTemplate)
	templates.DELETE("/:id", h.DeleteTemplate)
	templates.POST("/:id/set-default", h.SetDefaultTemplate)

	users := protected.Group("/users", RequireAdmin())
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUserByID)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	upload := protected.Group("/upload")
	upload.POST("", h.UploadFile)
	upload.DELETE("/:id", h.DeleteFile)

	backupGroup := protected.Group("/backup")
	backupGroup.GET("/export", h.ExportBackup)
	backupGroup.POST("/email", h.EmailBackup)
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// actorEmail returns the authenticated user's email for audit fields
func actorEmail(c *gin.Context) string {
	return c.GetString("userEmail")
}

// respondError maps service errors onto HTTP responses. Unrecognized errors
// become a generic 500 so internal details never leak to the caller.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:  "error",
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Status:  "error",
			Code:    "FORBIDDEN",
			Message: err.Error(),
		})
	default:
		h.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Code:    "INTERNAL",
			Message: "Internal server error",
		})
	}
}

func (h *Handler) respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "BAD_REQUEST",
		Message: err.Error(),
	})
}
