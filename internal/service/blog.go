package service

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/pkg/sanitize"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// BlogService отвечает за статьи блога. Контент очищается дважды:
// перед записью и перед каждой выдачей, чтобы старые неочищенные записи не утекали.
type BlogService struct {
	storage   repository.BlogStorage
	sanitizer *sanitize.Sanitizer
	log       *zap.Logger
}

func NewBlogService(storage repository.BlogStorage, sanitizer *sanitize.Sanitizer, log *zap.Logger) *BlogService {
	return &BlogService{
		storage:   storage,
		sanitizer: sanitizer,
		log:       log,
	}
}

// List возвращает опубликованные статьи или все, если includeDrafts.
func (s *BlogService) List(ctx context.Context, includeDrafts bool) ([]*domain.BlogPost, error) {
	var (
		posts []*domain.BlogPost
		err   error
	)
	if includeDrafts {
		posts, err = s.storage.ListBlogPosts(ctx)
	} else {
		posts, err = s.storage.ListPublishedBlogPosts(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	for _, post := range posts {
		s.clean(post)
	}
	return posts, nil
}

// GetPublished возвращает опубликованную статью по slug. Черновики выглядят как отсутствующие.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.storage.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, repository.ErrNotFound
	}

	s.clean(post)
	return post, nil
}

// Create очищает контент и сохраняет статью.
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) error {
	post.Content = s.sanitizer.HTML(post.Content)
	if err := s.storage.CreateBlogPost(ctx, post); err != nil {
		return err
	}
	return nil
}

// Update очищает новый контент, если он передан, и применяет патч.
func (s *BlogService) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	if patch.Content != nil {
		content := s.sanitizer.HTML(*patch.Content)
		patch.Content = &content
	}

	post, err := s.storage.UpdateBlogPost(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.clean(post)
	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.storage.DeleteBlogPost(ctx, id)
}

func (s *BlogService) clean(post *domain.BlogPost) {
	cleaned := s.sanitizer.HTML(post.Content)
	if cleaned != post.Content {
		s.log.Warn("stored blog content contained disallowed markup", zap.String("slug", post.Slug))
		post.Content = cleaned
	}
}
