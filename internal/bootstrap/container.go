package bootstrap

import (
	"context"
	"log"

	"talentmatch-be/internal/config"
	"talentmatch-be/internal/controller"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/pkg/mailer"
	"talentmatch-be/internal/repository/memory"
	"talentmatch-be/internal/repository/remote"
	"talentmatch-be/internal/repository/unitofwork"
	"talentmatch-be/internal/service"
	"talentmatch-be/pkg/authstream"
	"talentmatch-be/pkg/embedding"
	"talentmatch-be/pkg/identity"

	pktNats "talentmatch-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ProfileController    controller.IProfileController
	OnboardingController controller.IOnboardingController
	JobController        controller.IJobController
	DashboardController  controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Auth event plumbing
	AuthQueue        *authstream.Queue
	IdentityRegistry *identity.Registry
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

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// In-memory session storage
	storeRepo := memory.NewStoreRepository()
	navigationRepo := memory.NewNavigationRepository()

	// Auth event queue and its subscribers
	authQueue := authstream.NewQueue()
	registry := identity.NewRegistry()
	authQueue.Subscribe(registry.HandleEvent)

	// 3. Services
	remoteStore := remote.NewGormRemoteStore(uowFactory)
	profileService := service.NewProfileService(storeRepo, remoteStore, cfg.Storage.UploadDir, natsPub, sysLogger)

	// A sign-out invalidates the cached aggregate for that user.
	authQueue.Subscribe(func(e authstream.Event) {
		if e.Type == authstream.EventSignedOut {
			profileService.EvictStore(e.UserId)
		}
	})

	publisherService := service.NewPublisherService(cfg.Keys.EmbedJobTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedJobTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, authQueue, sysLogger)
	onboardingService := service.NewOnboardingService(navigationRepo, profileService, natsPub, sysLogger)
	jobService := service.NewJobService(uowFactory, publisherService, natsPub, sysLogger)
	matchService := service.NewMatchService(uowFactory, profileService, embeddingProvider, rdb, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		ProfileController:    controller.NewProfileController(profileService, matchService),
		OnboardingController: controller.NewOnboardingController(onboardingService),
		JobController:        controller.NewJobController(jobService),
		DashboardController:  controller.NewDashboardController(matchService, profileService),

		ConsumerService: consumerService,

		AuthQueue:        authQueue,
		IdentityRegistry: registry,
	}
}
