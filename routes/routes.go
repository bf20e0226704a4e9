package routes

import (
	"net/http"
	"time"

	"fisioagenda/handlers"
	"fisioagenda/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the scheduling engine endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("", ah.GetWindow)
		api.POST("", ah.CreateAppointment)
		api.POST("/series", ah.CreateSeries)
		api.PATCH("/:id", ah.UpdateAppointment)
		api.DELETE("/:id", ah.DeleteAppointment)

		api.PUT("/:id/status", ah.ChangeStatus)
		api.PUT("/:id/toggle-done", ah.ToggleDone)
		api.PUT("/:id/paid", ah.SetPaid)

		api.POST("/:id/drag", ah.BeginDrag)
		api.POST("/drop", ah.Drop)
		api.POST("/drag/cancel", ah.CancelDrag)
	}

	schedule := r.Group("/api/schedule")
	{
		schedule.GET("/slots", ah.DaySlots)
		schedule.GET("/occupancy", ah.DayOccupancy)
		schedule.GET("/tick", ah.Tick)
	}
}

// RegisterReportRoutes registers the reporting aggregator endpoints.
func RegisterReportRoutes(r *gin.Engine, rh *handlers.ReportHandler) {
	api := r.Group("/api/reports")
	{
		api.GET("", rh.GetReport)
		api.GET("/arrears", rh.GetArrears)
		api.GET("/detail", rh.GetBucketDetail)
	}
}

// RegisterReminderRoutes registers the reminder rendering endpoint.
func RegisterReminderRoutes(r *gin.Engine, nh *handlers.ReminderHandler) {
	r.GET("/api/reminders/:id", nh.GetReminderLink)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires middleware and every route group.
func RegisterRoutes(r *gin.Engine, ah *handlers.AppointmentHandler, rh *handlers.ReportHandler, nh *handlers.ReminderHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, ah)
	RegisterReportRoutes(r, rh)
	RegisterReminderRoutes(r, nh)
}
