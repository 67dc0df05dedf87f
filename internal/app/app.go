package app

import (
	"log"
	"net/http"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/config"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/middleware"
	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine, cfg config.Config) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, 5)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable,
			"database connection failed", http.StatusServiceUnavailable)
	}
	log.Println("✅ Database connection established")

	if err := migrate(gormDB); err != nil {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable,
			"database migration failed", http.StatusServiceUnavailable)
	}
	log.Println("✅ Database tables ready")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(middleware.CORS(cfg.AllowedOriginsRaw))
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Register Modules & Routes
	return registerModules(router, db, gormDB)
}

// migrate creates the two tables if they are absent. Idempotent, runs at
// every startup; there is no versioned migration history.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
	)
}
