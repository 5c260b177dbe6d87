package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/catalog"
	"github.com/oakpress/storefront/internal/config"
	httpAPI "github.com/oakpress/storefront/internal/http"
	"github.com/oakpress/storefront/internal/http/controller"
	"github.com/oakpress/storefront/internal/logger"
	"github.com/oakpress/storefront/internal/metrics"
	"github.com/oakpress/storefront/internal/repository"
	repofile "github.com/oakpress/storefront/internal/repository/file"
	reposql "github.com/oakpress/storefront/internal/repository/sql"
	"github.com/oakpress/storefront/internal/service"
	sqspkg "github.com/oakpress/storefront/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()

	err = os.MkdirAll(conf.DataDir, 0o755)
	handleErr("creating data directory", err)

	// The preorder ledger is the only component with a database backend;
	// everything else stays on the JSON files in every environment.
	var ledger repository.PreorderLedger
	if conf.IsProduction() {
		db, err := reposql.StartDB(ctx, conf.Database)
		handleErr("starting database", err)
		ledger = reposql.NewPreorderLedger(db)
	} else {
		ledger = repofile.NewPreorderLedger(conf.PreordersPath())
	}

	// Preorder event publishing is optional; without a queue URL the
	// service simply skips it.
	var publisher *sqspkg.Publisher
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	}

	// Seed catalog is built once and shared read-only from here on.
	seed := catalog.NewSeed()

	catalogService := service.NewCatalogService(seed, conf.ProductsPath())
	uploadService := service.NewUploadService(conf.UploadDir)
	preorderService := service.NewPreorderService(ledger, publisher, len(seed))
	authService := service.NewAuthService(conf.Admin, conf.JWTSecret)

	ctr := controller.New(conf)
	authCtr := controller.NewAuthController(authService)
	productCtr := controller.NewProductController(catalogService, uploadService)
	preorderCtr := controller.NewPreorderController(preorderService)
	uploadCtr := controller.NewUploadController(uploadService)

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := gin.New()
	httpServer = httpAPI.InitRouter(conf, httpServer, authService, ctr, authCtr, productCtr, preorderCtr, uploadCtr)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
