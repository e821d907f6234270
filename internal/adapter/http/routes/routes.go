package routes

import (
	"os"
	"strconv"

	_ "offertehub/docs" // This will be auto-generated
	"offertehub/internal/adapter/http/handlers"
	repository2 "offertehub/internal/adapter/persistence/repository"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/infrastructure/database"
	"offertehub/internal/infrastructure/notify"
	"offertehub/internal/infrastructure/payments"
	"offertehub/internal/infrastructure/preview"
	"offertehub/internal/infrastructure/storage"
	"offertehub/internal/usecase"
	"offertehub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	tenantRepo := repository2.NewTenantDynamoRepository(ddb)
	overrideRepo := repository2.NewPricingOverrideDynamoRepository(ddb)
	activityRepo := repository2.NewActivityLogDynamoRepository(ddb)
	purchaseRepo := repository2.NewCreditPurchaseDynamoRepository(ddb)

	tables, err := pricing.LoadTables()
	if err != nil {
		log.Fatalf("Failed to load rate tables: %v", err)
	}
	quoteUseCase := usecase.NewQuoteUseCase(overrideRepo, tables)

	var photoStorage interfaces.IPhotoStorage
	if minioStorage, err := storage.NewMinioStorage(); err != nil {
		log.Warnf("Photo storage not configured: %v", err)
	} else {
		photoStorage = minioStorage
	}

	var previewGen interfaces.IPreviewGenerator
	if previewClient, err := preview.NewClient(); err != nil {
		log.Warnf("Preview generation not configured: %v", err)
	} else {
		previewGen = previewClient
	}

	var notifier interfaces.INotifier
	if mailer, err := notify.NewEmailNotifier(); err != nil {
		log.Warnf("Email notification not configured: %v", err)
	} else {
		notifier = mailer
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, tenantRepo, activityRepo, quoteUseCase, previewGen, notifier)

	var paymentGateway interfaces.IPaymentGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	creditUseCase := usecase.NewCreditUseCase(purchaseRepo, tenantRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	photoHandler := handlers.NewPhotoHandler(photoStorage)
	creditHandler := handlers.NewCreditHandler(creditUseCase)
	pricingHandler := handlers.NewPricingHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, quoteHandler, leadHandler, photoHandler, creditHandler, pricingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Warnf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
