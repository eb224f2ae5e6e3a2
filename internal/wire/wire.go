package wire

import (
	"Lumina/internal/api"
	"Lumina/internal/api/config"
	"Lumina/internal/api/handler"
	"Lumina/internal/job"
	"Lumina/internal/pkg/cron"
	"Lumina/internal/pkg/mq"
	"Lumina/internal/repository"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	SeedService service.SeedService
	Producer    *mq.Producer
	WorkerMgr   *mq.WorkerManager
	CronMgr     *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	insightRepo := repository.NewInsightRepo(db)

	userService := service.NewUserService(userRepo)
	youtubeService := service.NewYoutubeService(accountRepo)
	analyticsService := service.NewAnalyticsService(accountRepo, videoRepo, snapshotRepo)
	insightService := service.NewInsightService(userRepo, insightRepo)
	seedService := service.NewSeedService(userRepo, insightRepo, youtubeService)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		YoutubeHandler:   handler.NewYoutubeHandler(youtubeService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		AIHandler:        handler.NewAIHandler(insightService),
	}

	router := api.SetupRouter(handlers, cfg.CORS.AllowOrigins)

	producer, err := mq.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	workerMgr, err := mq.NewWorkerManager(cfg.Kafka,
		job.NewInsightJob(insightService),
		job.NewSyncJob(),
	)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(producer)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		SeedService: seedService,
		Producer:    producer,
		WorkerMgr:   workerMgr,
		CronMgr:     cronMgr,
	}, nil
}
