package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"github.com/quickblog/internal/blob"
	"github.com/quickblog/internal/config"
	"github.com/quickblog/internal/service"
)

const postCount = 8

var tagPool = []string{"技术", "生活", "思考", "教程", "项目", "golang", "web", "notes"}

// 演示数据生成器：向配置的存储写入若干随机文章。
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	gofakeit.Seed(time.Now().UnixNano())

	cfg := config.Load()
	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open blob store: %v", err)
	}
	posts := service.NewPostService(store, cfg.IDStrategy)

	fmt.Println("开始生成演示文章...")
	for i := 0; i < postCount; i++ {
		input := service.CreateInput{
			Title:   strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(3, 6)), "."),
			Content: fakeContent(),
			Author:  gofakeit.Name(),
			Tags:    fakeTags(),
		}

		post, err := posts.Create(ctx, input)
		if err != nil {
			log.Fatalf("failed to create post: %v", err)
		}
		fmt.Printf("  %s  %s\n", post.ID, post.Title)

		// 错开 createdAt，让列表顺序肉眼可辨
		time.Sleep(5 * time.Millisecond)
	}
	fmt.Printf("演示数据生成完成，共 %d 篇文章\n", postCount)
}

func fakeContent() string {
	paragraphs := make([]string, 0, 4)
	paragraphs = append(paragraphs, "## "+strings.TrimSuffix(gofakeit.Sentence(4), "."))
	for i := 0; i < gofakeit.Number(2, 4); i++ {
		paragraphs = append(paragraphs, gofakeit.Paragraph(1, gofakeit.Number(3, 5), 12, " "))
	}
	return strings.Join(paragraphs, "\n\n")
}

func fakeTags() []string {
	count := gofakeit.Number(0, 3)
	tags := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		tag := tagPool[gofakeit.Number(0, len(tagPool)-1)]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func openStore(ctx context.Context, cfg config.AppConfig) (blob.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
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
		return nil, fmt.Errorf("seeding needs a durable store, set QUICKBLOG_STORE to redis or minio")
	}
}
