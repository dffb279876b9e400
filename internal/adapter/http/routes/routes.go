package routes

import (
	"log"
	"strconv"

	_ "preconstruct/docs" // Generated swagger docs.
	"preconstruct/internal/adapter/http/handlers"
	repository2 "preconstruct/internal/adapter/persistence/repository"
	"preconstruct/internal/config"
	"preconstruct/internal/infrastructure/database"
	"preconstruct/internal/logging"
	"preconstruct/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	logger.Info("starting estimating service", zap.Int("port", cfg.Server.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg)

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	bidRepo := repository2.NewVendorBidDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	bidLevelingUseCase := usecase.NewBidLevelingUseCase(bidRepo, estimateRepo)
	documentLogUseCase := usecase.NewDocumentLogUseCase(estimateRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	bidLevelingHandler := handlers.NewBidLevelingHandler(bidLevelingUseCase)
	documentLogHandler := handlers.NewDocumentLogHandler(documentLogUseCase)

	logger.Info("routes wired", zap.String("region", cfg.AWS.Region))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatingRoutes(v1, estimateHandler, bidLevelingHandler, documentLogHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
