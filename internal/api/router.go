package api

import (
	v1 "github.com/Caesar-design242/beacongen/internal/api/v1"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Beacon   *v1.BeaconHandler
	Surveyor *v1.SurveyorHandler
}

func NewHandlers(health *v1.HealthHandler, beacon *v1.BeaconHandler, surveyor *v1.SurveyorHandler) Handlers {
	return Handlers{
		Health:   health,
		Beacon:   beacon,
		Surveyor: surveyor,
	}
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Beacon routes
	beacons := router.Group("/beacons")
	{
		beacons.POST("", handlers.Beacon.AllocateBeacons)
		beacons.GET("/usage/:prefix", handlers.Beacon.GetUsage)
		beacons.GET("/history/:prefix", handlers.Beacon.GetHistory)
		beacons.GET("/history/:prefix/export", handlers.Beacon.ExportHistory)
	}

	// Surveyor routes
	surveyors := router.Group("/surveyors")
	{
		surveyors.POST("", handlers.Surveyor.CreateSurveyor)
		surveyors.GET("", handlers.Surveyor.ListSurveyors)
		surveyors.GET("/:identifier", handlers.Surveyor.GetSurveyor)
	}
}
