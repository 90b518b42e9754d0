package routes

import (
	"log"
	"os"
	"strconv"

	_ "cnc_quote/docs" // This will be auto-generated
	"cnc_quote/internal/adapter/http/handlers"
	repository2 "cnc_quote/internal/adapter/persistence/repository"
	"cnc_quote/internal/infrastructure/database"
	"cnc_quote/internal/infrastructure/logging"
	"cnc_quote/internal/infrastructure/payments"
	"cnc_quote/internal/usecase"
	"cnc_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err.Error())
	}

	ddb := database.ConnectDynamoDB()

	partRepo := repository2.NewPartDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	finishRepo := repository2.NewFinishDynamoRepository(ddb)
	toleranceRepo := repository2.NewToleranceDynamoRepository(ddb)
	rateCardRepo := repository2.NewRateCardDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)

	pricingUseCase := usecase.NewPricingUseCase(partRepo, materialRepo, finishRepo, toleranceRepo, rateCardRepo, logger)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, pricingUseCase, logger)
	partUseCase := usecase.NewPartUseCase(partRepo, logger)
	catalogUseCase := usecase.NewCatalogUseCase(materialRepo, finishRepo, toleranceRepo, rateCardRepo, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway, logger)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, pricingHandler, quoteHandler, partHandler, paymentHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
