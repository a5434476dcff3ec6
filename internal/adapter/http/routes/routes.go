package routes

import (
	"context"
	"log"
	"strconv"

	_ "motofix/docs" // generated swagger spec
	"motofix/internal/adapter/http/handlers"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/adapter/persistence/repository"
	"motofix/internal/infrastructure/database"
	"motofix/internal/infrastructure/notifications"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewRequestDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	orderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	changeRepo := repository.NewChangeRequestDynamoRepository(ddb)
	receiptRepo := repository.NewReceiptDynamoRepository(ddb)
	reviewRepo := repository.NewReviewDynamoRepository(ddb)
	workshopRepo := repository.NewWorkshopDynamoRepository(ddb)
	motorcycleRepo := repository.NewMotorcycleDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)

	if err := database.SeedCatalog(context.Background(), catalogRepo); err != nil {
		log.Printf("catalog seeding failed: %v", err)
	}
	if err := database.SeedDemoData(context.Background(), workshopRepo, motorcycleRepo); err != nil {
		log.Printf("demo data seeding failed: %v", err)
	}

	notifySink := notifications.NewRepositorySink(notificationRepo)

	identityUseCase := usecase.NewIdentityUseCase(userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, quoteRepo, motorcycleRepo, catalogRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, requestRepo, orderRepo, workshopRepo, notifySink)
	workOrderUseCase := usecase.NewWorkOrderUseCase(orderRepo, changeRepo, requestRepo, workshopRepo, notifySink)
	settlementUseCase := usecase.NewSettlementUseCase(receiptRepo, reviewRepo, orderRepo, workshopRepo, notifySink)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	identityHandler := handlers.NewIdentityHandler(identityUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	requestHandler := handlers.NewRequestHandler(requestUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, settlementUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, settlementUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authenticated := v1.Group("")
	authenticated.Use(middleware.Authenticate(identityUseCase))
	addMarketplaceRoutes(authenticated,
		identityHandler,
		catalogHandler,
		requestHandler,
		quoteHandler,
		workOrderHandler,
		settlementHandler,
		notificationHandler,
	)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
