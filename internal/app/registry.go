package app

import (
	"database/sql"
	"net/http"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/dashboard"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/health"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	healthHandler := health.NewHandler(db)

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "HRMS Lite API is running",
			"version": "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
		health.RegisterRoutes(api, healthHandler)
	}

	return nil
}
