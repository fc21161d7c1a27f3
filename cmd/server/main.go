package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/quickblog/internal/blob"
	"github.com/quickblog/internal/config"
	"github.com/quickblog/internal/handler"
	"github.com/quickblog/internal/router"
	"github.com/quickblog/internal/service"
)

func main() {
	// 加载 .env（不存在时静默回退到真实环境变量）
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open blob store: %v", err)
	}

	posts := service.NewPostService(store, cfg.IDStrategy)
	api := handler.NewAPI(posts)

	r := router.SetupRouter(api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// openStore 根据配置选择键值存储实现。
func openStore(cfg config.AppConfig) (blob.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case "redis":
		return blob.NewRedisStore(ctx, blob.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
	case "minio":
		return blob.NewMinioStore(ctx, blob.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.MinioBucket,
		})
	default:
		log.Println("no durable store configured, posts live in memory only")
		return blob.NewMemoryStore(), nil
	}
}
