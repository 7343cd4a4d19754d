package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"course-assist-be/internal/config"
	"course-assist-be/internal/controller"
	"course-assist-be/internal/pkg/logger"
	"course-assist-be/internal/pkg/mailer"
	"course-assist-be/internal/repository/implementation"
	"course-assist-be/internal/repository/unitofwork"
	"course-assist-be/internal/service"
	"course-assist-be/pkg/docstore"
	"course-assist-be/pkg/embedding"
	"course-assist-be/pkg/extractor"
	"course-assist-be/pkg/ingest"
	"course-assist-be/pkg/llm/factory"
	pkgNats "course-assist-be/pkg/nats"
	"course-assist-be/pkg/rag"
	"course-assist-be/pkg/rag/session"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared facades used by the reindex command
	IngestionService service.IIngestionService
	Logger           logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
			cfg.Ai.CallTimeout,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey, cfg.Ai.CallTimeout)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiApiKey,
		cfg.Ai.CallTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Index + Ingestion
	vectorIndex := implementation.NewCorpusVectorRepository(db, embedding.GeminiDimension)

	var docs docstore.DocumentStore
	if cfg.Docs.Kind == "http" {
		docs = docstore.NewHTTPStore(cfg.Docs.BaseURL, cfg.Ai.CallTimeout, cfg.Docs.ListingTTL)
	} else {
		docs = docstore.NewLocalStore(cfg.Docs.LocalDir)
	}

	pipeline := ingest.NewPipeline(
		docs,
		extractor.NewTextExtractor(),
		embeddingProvider,
		vectorIndex,
		sysLogger,
		ingest.Options{
			ChunkSize:    cfg.Chat.ChunkSize,
			ChunkOverlap: cfg.Chat.ChunkOverlap,
			MaxAttempts:  uint(cfg.Chat.MaxAttempts),
			BaseDelay:    cfg.Chat.BaseDelay,
		},
	)

	// 5. Query Engine
	engine := rag.NewEngine(
		session.NewRegistry(),
		embeddingProvider,
		vectorIndex,
		llmProvider,
		service.NewEscalationSink(uowFactory),
		service.NewHistorySink(uowFactory),
		sysLogger,
		rag.Options{
			TopK:           cfg.Chat.TopK,
			SessionTimeout: cfg.Chat.SessionTimeout,
			MaxAttempts:    uint(cfg.Chat.MaxAttempts),
			BaseDelay:      cfg.Chat.BaseDelay,
			CallTimeout:    cfg.Ai.CallTimeout,
		},
	)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Chat.AnsweredTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.Chat.AnsweredTopic, pipeline)

	chatService := service.NewChatService(engine, uowFactory)
	escalationService := service.NewEscalationService(
		uowFactory,
		publisherService,
		emailService,
		natsPub,
		sysLogger,
	)
	ingestionService := service.NewIngestionService(pipeline, vectorIndex)

	// 7. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		AdminController:  controller.NewAdminController(escalationService, ingestionService),
		ConsumerService:  consumerService,
		IngestionService: ingestionService,
		Logger:           sysLogger,
	}
}
