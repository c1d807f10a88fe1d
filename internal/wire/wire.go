package wire

import (
	"Brightline/internal/api"
	"Brightline/internal/api/config"
	"Brightline/internal/api/handler"
	"Brightline/internal/job"
	"Brightline/internal/pkg/cron"
	"Brightline/internal/pkg/kafka"
	"Brightline/internal/pkg/minio"
	"Brightline/internal/pkg/mongo"
	"Brightline/internal/pkg/notify"
	"Brightline/internal/pkg/redis"
	"Brightline/internal/pkg/security"
	"Brightline/internal/repository"
	"Brightline/internal/service"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	driver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// fanOutTimeout 单次通知扇出的整体超时
const fanOutTimeout = 30 * time.Second

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	CronMgr      *cron.Manager
	KafkaManager *kafka.Manager
	Dispatcher   *notify.AsyncDispatcher
	MigrationSvc service.MigrationService
}

// BuildApplication objectStore 为 nil 时不启用封面图上传
func BuildApplication(db *gorm.DB, mongoDB *driver.Database, rdb *goredis.Client, objectStore *minio.ObjectStore, cfg *config.Config) (*ApplicationContainer, error) {
	if err := cfg.Auth.ValidateSecret(cfg.Server.Mode); err != nil {
		return nil, err
	}

	kv := redis.NewKVStore(rdb)

	submissionRepo := repository.NewSubmissionRepo(db)
	postRepo := mongo.NewBlogPostRepo(mongoDB)
	analyticsRepo := mongo.NewAnalyticsRepo(mongoDB)

	// 通知扇出
	timeout := time.Duration(cfg.Notify.TimeoutSeconds) * time.Second
	notifier := notify.NewNotifier(notify.SinksFromConfig(cfg.Notify, notify.NewHTTPClient(timeout))...)
	log.Info("Notification sinks configured", "sinks", notifier.SinkNames())
	asyncDispatcher := notify.NewAsyncDispatcher(notifier, fanOutTimeout)

	var dispatcher notify.Dispatcher = asyncDispatcher
	var kafkaMgr *kafka.Manager
	if cfg.Kafka.Enable {
		mgr, err := kafka.NewManager(cfg.Kafka, notifier, asyncDispatcher)
		if err != nil {
			return nil, err
		}
		kafkaMgr = mgr
		dispatcher = mgr.Dispatcher()
	}

	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	var store service.ObjectStore
	if objectStore != nil {
		store = objectStore
	}

	blogService := service.NewBlogService(postRepo, analyticsRepo, kv)
	submissionService := service.NewSubmissionService(submissionRepo, dispatcher)
	authService := service.NewAuthService(cfg.Auth.Admins, jwtManager, kv)
	migrationService := service.NewMigrationService(blogService, redis.NewLegacyStore(kv))
	mediaService := service.NewMediaService(store, kv, cfg.MinIO.MaxWidth)

	authService.OnAuthStateChanged(func(user *security.AuthUser) {
		if user == nil {
			log.Info("Admin session ended")
			return
		}
		log.Info("Admin session started", "uid", user.UID, "email", user.Email)
	})

	handlers := &api.HandlersGroup{
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, cfg.Server.ServiceName),
		BlogHandler:       handler.NewBlogHandler(blogService),
		AdminHandler:      handler.NewAdminHandler(blogService, migrationService),
		AuthHandler:       handler.NewAuthHandler(authService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
		AuthService:       authService,
	}

	router := api.SetupRouter(handlers, cfg.Server.AllowedOrigins)

	cronMgr := cron.NewCronManager(cfg.Cron.AnalyticsSummarySpec, job.NewAnalyticsSummaryJob(blogService))

	return &ApplicationContainer{
		Router:       router,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
		Dispatcher:   asyncDispatcher,
		MigrationSvc: migrationService,
	}, nil
}
