package bootstrap

import (
	"context"
	"log"

	"traderhub-be/internal/config"
	"traderhub-be/internal/controller"
	"traderhub-be/internal/handler"
	"traderhub-be/internal/pkg/logger"
	"traderhub-be/internal/pkg/mailer"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/internal/service"
	"traderhub-be/internal/websocket"
	"traderhub-be/pkg/admin/dashboard"
	adminEvents "traderhub-be/pkg/admin/events"
	"traderhub-be/pkg/admin/trader"
	"traderhub-be/pkg/audit"
	"traderhub-be/pkg/storage"

	pktNats "traderhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ProfileController  controller.IProfileController
	PlanController     controller.IPlanController
	RequestController  controller.IRequestController
	TimelineController controller.ITimelineController
	DocumentController controller.IDocumentController
	AdminController    controller.IAdminController
	ConfigController   controller.IConfigController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
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
	auditRecorder := audit.NewRecorder(pubSub)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	}

	// Object storage. Signed URLs are cached in Redis and every resolution
	// is recorded on the audit bus.
	storageDriver, err := storage.NewS3Driver(&storage.Config{
		Bucket:          cfg.Storage.Bucket,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Endpoint:        cfg.Storage.Endpoint,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}
	attachmentResolver := storage.NewResolver(storageDriver, rdb, auditRecorder)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, auditRecorder)
	profileService := service.NewProfileService(uowFactory, storageDriver)
	planService := service.NewPlanService(uowFactory, auditRecorder)
	requestService := service.NewRequestService(uowFactory, emailService, wsHub, auditRecorder)
	timelineService := service.NewTimelineService(uowFactory, attachmentResolver)
	documentService := service.NewDocumentService(uowFactory, storageDriver, attachmentResolver, auditRecorder)
	configService := service.NewConfigService(uowFactory, auditRecorder)

	// Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	traderManager := trader.NewManager(sysLogger, adminEventPublisher)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	adminService := service.NewAdminService(
		uowFactory,
		traderManager,
		dashboardAggregator,
		auditRecorder,
	)

	// 3.5 Background Workers
	auditConsumer := service.NewAuditConsumerService(pubSub, uowFactory, natsPub)

	if natsSub != nil {
		notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		ProfileController:   controller.NewProfileController(profileService),
		PlanController:      controller.NewPlanController(planService),
		RequestController:   controller.NewRequestController(requestService),
		TimelineController:  controller.NewTimelineController(timelineService),
		DocumentController:  controller.NewDocumentController(documentService),
		AdminController:     controller.NewAdminController(adminService),
		ConfigController:    controller.NewConfigController(configService),

		AuditConsumerService: auditConsumer,
	}
}
