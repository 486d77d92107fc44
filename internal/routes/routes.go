package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pereval/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	perevalHandler *handlers.PerevalHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	// ---- service
	r.GET("/healthz", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ---- pereval
	r.POST("/submitData", perevalHandler.Submit)
	submit := r.Group("/submitData")
	{
		submit.GET("/", perevalHandler.ListByEmail)
		submit.GET("/:id", perevalHandler.GetByID)
		submit.PATCH("/:id", perevalHandler.Update)
		submit.GET("/:id/card", perevalHandler.Card)
	}
	return r
}
