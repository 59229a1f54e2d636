// File: wukala/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wukala/config"
	"wukala/cron"
	"wukala/database"
	"wukala/database/kv"
	caselawRepo "wukala/database/repository/caselaw"
	conversationRepo "wukala/database/repository/conversation"
	lawyerRepo "wukala/database/repository/lawyer"
	"wukala/handlers"
	"wukala/middleware"
	"wukala/routes"
	"wukala/services/application"
	"wukala/services/assistant"
	"wukala/services/caselaw"
	"wukala/services/dictionary"
	"wukala/services/directory"
	"wukala/services/messaging"
	"wukala/services/session"
	"wukala/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitKV()
	utils.InitAssistantCache()

	kvStore := kv.NewRedisStore(utils.GetKVClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	lawRepo := lawyerRepo.NewMongoLawyerRepo()
	caseRepo := caselawRepo.NewMongoCaseLawRepo()
	convRepo := conversationRepo.NewMongoConversationRepo()

	// Seed the built-in catalogs on first boot.
	directory.SeedCatalog(lawRepo)
	caselaw.SeedCatalog(caseRepo)

	// services.
	ledger := application.NewLedger(kvStore, utils.ApplicationLedgerKey)
	sessionManager := session.NewManager(kvStore, ledger, config.AppConfig.AdminEmail)

	directoryService := &directory.DefaultDirectoryService{Repo: lawRepo}
	caselawService := &caselaw.DefaultCaseLawService{Repo: caseRepo, Store: kvStore}
	dictionaryService := &dictionary.DefaultDictionaryService{}
	messagingService := &messaging.DefaultMessagingService{
		Repo:       convRepo,
		LawyerRepo: lawRepo,
	}

	ctxStore := assistant.NewContextStore(
		kv.NewRedisStore(utils.GetAssistantCacheClient()),
		30*time.Minute,
	)
	assistantService := &assistant.DefaultAssistantService{
		Ctx:   ctxStore,
		Queue: cron.NewAsynqReplyQueue(),
		Delay: time.Duration(config.AppConfig.AssistantReplyDelayMS) * time.Millisecond,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SessionService: sessionManager,

		Session:     handlers.NewSessionHandler(sessionManager),
		Application: handlers.NewApplicationHandler(ledger),
		Admin:       handlers.NewAdminHandler(ledger),
		Directory:   handlers.NewDirectoryHandler(directoryService),
		CaseLaw:     handlers.NewCaseLawHandler(caselawService),
		Dictionary:  handlers.NewDictionaryHandler(dictionaryService),
		Assistant:   handlers.NewAssistantHandler(assistantService),
		Messaging:   handlers.NewMessagingHandler(messagingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the delayed-reply worker.
	cron.InitAssistantWorker(assistantService)

	utils.StartHealthMonitor(utils.GetKVClient(), utils.GetAssistantCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
