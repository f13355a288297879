package routes

import (
	"log"
	"strconv"

	_ "fabricmeasure/docs" // This will be auto-generated
	"fabricmeasure/internal/adapter/http/handlers"
	repository2 "fabricmeasure/internal/adapter/persistence/repository"
	"fabricmeasure/internal/infrastructure/capture"
	"fabricmeasure/internal/infrastructure/config"
	"fabricmeasure/internal/infrastructure/localstore"
	"fabricmeasure/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	store, err := localstore.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open local store at %s: %v", cfg.DBPath, err)
	}

	historyRepo := repository2.NewHistoryLocalStoreRepository(store)

	uploadBackend := capture.NewUploadBackend(cfg.UploadProcessingDelay())
	arBackend := capture.NewARBackend(cfg.ARMeasureDelay())
	cameraGateway := capture.NewCameraGateway(cfg.CameraDisabled)

	sessionUseCase := usecase.NewSessionUseCase(historyRepo, uploadBackend, arBackend, cameraGateway)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	historyHandler := handlers.NewHistoryHandler(historyUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMeasurementRoutes(v1, sessionHandler, historyHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
