package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fisioagenda/config"
	"fisioagenda/cron"
	"fisioagenda/database"
	appointmentRepo "fisioagenda/database/repository/appointment"
	invoiceRepo "fisioagenda/database/repository/invoice"
	patientRepo "fisioagenda/database/repository/patient"
	"fisioagenda/database/repository/store"
	"fisioagenda/handlers"
	"fisioagenda/middleware"
	"fisioagenda/routes"
	"fisioagenda/services/notification"
	"fisioagenda/services/reporting"
	"fisioagenda/services/scheduling"
	"fisioagenda/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	recordStore := store.NewMongoRecordStore()
	apptRepo := appointmentRepo.NewStoreAppointmentRepo(recordStore)
	patRepo := patientRepo.NewStorePatientRepo(recordStore)
	invRepo := invoiceRepo.NewStoreInvoiceRepo(recordStore)

	// services.
	notificationService := &notification.DefaultNotificationService{
		Patients: patRepo,
	}

	reminderScheduler := cron.NewReminderScheduler()
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:      apptRepo,
		Patients:  patRepo,
		Cache:     utils.GetCacheClient(),
		Reminders: reminderScheduler,
	}

	reportingService := &reporting.DefaultReportingService{
		Appointments: apptRepo,
		Invoices:     invRepo,
	}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(schedulingService)
	reportHandler := handlers.NewReportHandler(reportingService)
	reminderHandler := handlers.NewReminderHandler(notificationService, apptRepo)

	routes.RegisterRoutes(router, appointmentHandler, reportHandler, reminderHandler)

	// background workers.
	cron.InitReminderWorker(apptRepo, notificationService)
	clockTick := cron.StartClockTick(schedulingService)
	defer clockTick.Stop()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
