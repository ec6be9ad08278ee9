package router

import (
	"net/http"

	"biomed-maintenance-tracker/internal/handler"
	"biomed-maintenance-tracker/internal/middleware"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the routes are built from
type Deps struct {
	Tokens         *utils.TokenManager
	Auth           *service.AuthService
	Equipment      *service.EquipmentService
	Notifications  *service.NotificationService
	Staff          *service.StaffService
	Theme          *service.ThemeService
	Notes          *service.NoteService
	Export         *service.ExportService
	Metrics        http.Handler
	AllowedOrigins []string
	SecureCookies  bool
	Log            *zap.Logger
}

// New builds the gin engine with every route registered
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORS(d.AllowedOrigins))

	authHandler := handler.NewAuthHandler(d.Auth, int(d.Tokens.RefreshTokenExpiry().Seconds()), d.SecureCookies)
	profileHandler := handler.NewProfileHandler(d.Auth, d.Theme)
	dashboardHandler := handler.NewDashboardHandler(d.Equipment, d.Notifications)
	equipmentHandler := handler.NewEquipmentHandler(d.Equipment, d.Notes, d.Export)
	staffHandler := handler.NewStaffHandler(d.Staff)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "biomed-maintenance-tracker",
		})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api := r.Group("")
	api.Use(middleware.AuthMiddleware(d.Tokens))

	me := api.Group("/me")
	{
		me.GET("", profileHandler.Me)
		me.GET("/theme", profileHandler.GetTheme)
		me.PUT("/theme", profileHandler.SetTheme)
		me.POST("/theme/toggle", profileHandler.ToggleTheme)
	}

	can := func(permission string) gin.HandlerFunc {
		return middleware.RequirePermission(d.Auth, permission)
	}

	api.GET("/dashboard", can(models.PermViewDashboard), dashboardHandler.Dashboard)

	equipment := api.Group("/equipment")
	{
		equipment.GET("", can(models.PermViewEquipment), equipmentHandler.List)
		equipment.GET("/export", can(models.PermViewEquipment), equipmentHandler.Export)
		equipment.GET("/:id", can(models.PermViewEquipment), equipmentHandler.Get)
		equipment.POST("", can(models.PermAddEquipment), equipmentHandler.Create)
		equipment.POST("/:id/logs", can(models.PermEditEquipment), equipmentHandler.LogService)
		equipment.POST("/:id/assessments", can(models.PermEditEquipment), equipmentHandler.SubmitAssessment)
		equipment.POST("/:id/notes", can(models.PermEditEquipment), equipmentHandler.GenerateNotes)
	}

	risk := api.Group("/risk", can(models.PermViewEquipment))
	{
		risk.GET("/classify", dashboardHandler.ClassifyRisk)
		risk.GET("/levels", dashboardHandler.RiskLevels)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", can(models.PermViewDashboard), dashboardHandler.Notifications)
		notifications.POST("/:id/acknowledge", can(models.PermAcknowledgeNotification), dashboardHandler.Acknowledge)
	}

	api.POST("/staff", can(models.PermAddStaff), staffHandler.Create)

	return r
}
