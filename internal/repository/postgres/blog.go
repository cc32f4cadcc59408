package postgres

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"

	"go.uber.org/zap"
)

// --- Blog Methods ---

func (s *PostgresStorage) listBlogPosts(ctx context.Context, op string, where map[string]any) ([]*domain.BlogPost, error) {
	posts := make([]*domain.BlogPost, 0)

	query := s.db.WithContext(ctx)
	if len(where) > 0 {
		query = query.Where(where)
	}
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return posts, nil
}

// ListBlogPosts возвращает все статьи, новые первыми
func (s *PostgresStorage) ListBlogPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.listBlogPosts(ctx, "list blog posts", nil)
}

// ListPublishedBlogPosts возвращает опубликованные статьи
func (s *PostgresStorage) ListPublishedBlogPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.listBlogPosts(ctx, "list published blog posts", map[string]any{"is_published": true})
}

// GetBlogPostBySlug получает статью по slug
func (s *PostgresStorage) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, s.fail("get blog post by slug", err, zap.String("slug", slug))
	}
	return &post, nil
}

// CreateBlogPost сохраняет статью
func (s *PostgresStorage) CreateBlogPost(ctx context.Context, post *domain.BlogPost) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return s.fail("create blog post", err, zap.String("slug", post.Slug))
	}

	s.log.Info("created blog post", zap.String("post_id", post.ID), zap.String("slug", post.Slug))
	return nil
}

// UpdateBlogPost применяет частичное обновление и возвращает актуальную запись
func (s *PostgresStorage) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	if !patch.IsEmpty() {
		result := s.db.WithContext(ctx).Model(&domain.BlogPost{}).Where("id = ?", id).Updates(patch.Columns())
		if result.Error != nil {
			return nil, s.fail("update blog post", result.Error, zap.String("post_id", id))
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
	}

	var post domain.BlogPost
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, s.fail("get blog post", err, zap.String("post_id", id))
	}
	return &post, nil
}

// DeleteBlogPost удаляет статью
func (s *PostgresStorage) DeleteBlogPost(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BlogPost{})
	if result.Error != nil {
		return s.fail("delete blog post", result.Error, zap.String("post_id", id))
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted blog post", zap.String("post_id", id))
	return nil
}
