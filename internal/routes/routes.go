package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/audit"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/config"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher, cfg.Timezone)
	serviceHandler := handlers.NewServiceHandler(db, rdb, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/customers", customerHandler.List)
	r.POST("/customers", customerHandler.Create)
	r.PUT("/customers/:id", customerHandler.Update)
	r.DELETE("/customers/:id", customerHandler.Delete)

	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.PUT("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	r.GET("/services", serviceHandler.List)
	r.GET("/available-services", serviceHandler.Available)

	r.GET("/audit-logs", auditLogsHandler.List)
}
