package main

import (
	"Brightline/internal/api/config"
	"Brightline/internal/pkg/logger"
	"Brightline/internal/pkg/mongo"
	"Brightline/internal/pkg/redis"
	"Brightline/internal/service"
	"context"
	"flag"
	log "log/slog"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// 将旧版本地存储导出的文章 JSON 写入旧数据区，并执行一次迁移初始化
func main() {
	file := flag.String("file", "", "legacy posts JSON exported from browser local storage")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg
	logger.InitLogger()

	rdb, err := redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	mongoDB, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), "cli-migration"), 5*time.Minute)
	defer cancel()

	kv := redis.NewKVStore(rdb)
	legacy := redis.NewLegacyStore(kv)

	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			log.Error("read legacy file failed", "file", *file, "err", err)
			os.Exit(1)
		}
		if !json.Valid(raw) {
			log.Error("legacy file is not valid JSON", "file", *file)
			os.Exit(1)
		}
		if err = legacy.SavePosts(ctx, string(raw)); err != nil {
			log.Error("store legacy posts failed", "err", err)
			os.Exit(1)
		}
		log.Info("legacy posts loaded", "file", *file, "bytes", len(raw))
	}

	blogSvc := service.NewBlogService(mongo.NewBlogPostRepo(mongoDB), mongo.NewAnalyticsRepo(mongoDB), kv)
	migrationSvc := service.NewMigrationService(blogSvc, legacy)

	if err = migrationSvc.Initialize(ctx); err != nil {
		log.Error("migration failed", "err", err)
		os.Exit(1)
	}
	log.Info("migration finished")
}
