package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "freightdoc/docs"
	"freightdoc/internal/handler"
	"freightdoc/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health           *handler.HealthHandler
	Ingestion        *handler.IngestionHandler
	RateConfirmation *handler.RateConfirmationHandler
	BillOfLading     *handler.BillOfLadingHandler
	Detention        *handler.DetentionHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.OrganizationScope())

	v1.POST("/documents/ingest", h.Ingestion.Ingest)

	rc := v1.Group("/rate-confirmations")
	rc.GET("/:id", h.RateConfirmation.GetByID)
	rc.GET("/:id/notifications", h.RateConfirmation.ListNotifications)
	rc.POST("/:id/accept", h.RateConfirmation.Accept)
	rc.POST("/:id/reject", h.RateConfirmation.Reject)

	bol := v1.Group("/bills-of-lading")
	bol.GET("/:id", h.BillOfLading.GetByID)
	bol.POST("/:id/validate", h.BillOfLading.Validate)
	bol.GET("/:id/verdict", h.BillOfLading.GetVerdict)

	det := v1.Group("/detention/invoices")
	det.POST("", h.Detention.GenerateInvoice)
	det.POST("/export", h.Detention.ExportRegister)
	det.POST("/:id/send", h.Detention.SendInvoice)

	return r
}
