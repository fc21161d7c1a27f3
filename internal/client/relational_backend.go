package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickblog/internal/config"
	"github.com/quickblog/internal/db"
	"github.com/quickblog/internal/service"
	"gorm.io/gorm"
)

// RelationalBackend stores posts in a relational database through gorm.
// It carries the full capability set: update in place and slug lookup.
type RelationalBackend struct {
	db *gorm.DB
}

func openRelationalBackend(cfg config.AppConfig) (*RelationalBackend, error) {
	if cfg.DatabaseDSN != "" {
		gdb, err := db.OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewRelationalBackend(gdb), nil
	}

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return NewRelationalBackend(gdb), nil
}

// NewRelationalBackend wraps an already opened gorm handle.
func NewRelationalBackend(gdb *gorm.DB) *RelationalBackend {
	return &RelationalBackend{db: gdb}
}

func (b *RelationalBackend) Capabilities() Capabilities {
	return Capabilities{Update: true, BySlug: true}
}

func (b *RelationalBackend) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (b *RelationalBackend) List(ctx context.Context) ([]service.Post, error) {
	var rows []db.Post
	if err := b.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]service.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, toServicePost(row))
	}
	return posts, nil
}

func (b *RelationalBackend) Get(ctx context.Context, id string) (*service.Post, error) {
	var row db.Post
	if err := b.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post := toServicePost(row)
	return &post, nil
}

func (b *RelationalBackend) GetBySlug(ctx context.Context, slug string) (*service.Post, error) {
	var row db.Post
	if err := b.db.WithContext(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post := toServicePost(row)
	return &post, nil
}

func (b *RelationalBackend) Create(ctx context.Context, input service.CreateInput) (*service.Post, error) {
	slug, err := b.uniqueSlug(ctx, service.GenerateSlug(input.Title), "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := db.Post{
		ID:        service.NewTimestampID(),
		Title:     input.Title,
		Slug:      slug,
		Content:   input.Content,
		Author:    input.Author,
		Tags:      db.TagList(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	post := toServicePost(row)
	return &post, nil
}

// Update replaces the mutable fields, keeps createdAt, and bumps
// updatedAt. The slug follows the new title.
func (b *RelationalBackend) Update(ctx context.Context, id string, input service.CreateInput) (*service.Post, error) {
	var row db.Post
	if err := b.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slug, err := b.uniqueSlug(ctx, service.GenerateSlug(input.Title), id)
	if err != nil {
		return nil, err
	}

	row.Title = input.Title
	row.Slug = slug
	row.Content = input.Content
	row.Author = input.Author
	row.Tags = db.TagList(input.Tags)
	row.UpdatedAt = time.Now().UTC()
	if err := b.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, err
	}

	post := toServicePost(row)
	return &post, nil
}

func (b *RelationalBackend) Delete(ctx context.Context, id string) error {
	result := b.db.WithContext(ctx).Delete(&db.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// uniqueSlug appends -2, -3, ... until the slug is free. excludeID
// keeps an update from colliding with its own row.
func (b *RelationalBackend) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	if base == "" {
		base = "post"
	}

	slug := base
	for i := 2; ; i++ {
		query := b.db.WithContext(ctx).Model(&db.Post{}).Where("slug = ?", slug)
		if excludeID != "" {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func toServicePost(row db.Post) service.Post {
	tags := []string(row.Tags)
	if tags == nil {
		tags = []string{}
	}
	return service.Post{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Author:    row.Author,
		Tags:      tags,
		CreatedAt: row.CreatedAt.UTC().Format(service.TimeFormat),
		UpdatedAt: row.UpdatedAt.UTC().Format(service.TimeFormat),
	}
}
