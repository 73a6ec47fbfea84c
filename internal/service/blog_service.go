package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/repository"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

// BlogService handles blog post operations.
type BlogService struct {
	postRepo  repository.BlogPostRepository
	userRepo  repository.UserRepository
	validator *validator.Validator
}

// NewBlogService creates a new BlogService.
func NewBlogService(
	postRepo repository.BlogPostRepository,
	userRepo repository.UserRepository,
	v *validator.Validator,
) *BlogService {
	return &BlogService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		validator: v,
	}
}

// ListPublished returns published posts, newest publication first.
func (s *BlogService) ListPublished(ctx context.Context, limit int) ([]domain.BlogPostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx, domain.BlogPostFilter{
		PublishedOnly: true,
		Limit:         clampLimit(limit, DefaultBlogListLimit),
	})
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, posts)
}

// GetPublishedBySlug returns a published post. Drafts are reported as not found.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPostWithAuthor, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	if post == nil || !post.Published {
		return nil, domain.NotFoundError("blog post", slug)
	}

	out, err := s.withAuthors(ctx, []domain.BlogPost{*post})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ListAll returns every post, drafts included, newest first.
func (s *BlogService) ListAll(ctx context.Context) ([]domain.BlogPostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx, domain.BlogPostFilter{})
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, posts)
}

// GetByID returns a post by ID, published or not.
func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	if post == nil {
		return nil, domain.NotFoundError("blog post", id)
	}
	return post, nil
}

// Create stores a new post written by authorID. The slug is derived from
// the title when omitted; publishing stamps PublishedAt.
func (s *BlogService) Create(ctx context.Context, authorID string, in domain.BlogPostInput) (*domain.BlogPost, error) {
	ts := now()
	title := strings.TrimSpace(in.Title)
	post := &domain.BlogPost{
		ID:         uuid.New().String(),
		Title:      title,
		Slug:       slugOr(in.Slug, title),
		Content:    in.Content,
		Excerpt:    strings.TrimSpace(in.Excerpt),
		CoverImage: strings.TrimSpace(in.CoverImage),
		Tags:       cleanList(in.Tags),
		AuthorID:   authorID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if in.Published {
		post.Publish(ts)
	}

	if err := s.validator.ValidateBlogPost(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("blog_post", "create")
	logger.InfoContext(ctx, "Blog post created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.Bool("published", post.Published))
	return post, nil
}

// Update applies a partial update. Publishing a post that was never
// published stamps PublishedAt; an existing stamp is kept, including when
// the post is unpublished.
func (s *BlogService) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ts := now()
	if patch.Title != nil {
		post.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		post.Slug = slugOr(*patch.Slug, post.Title)
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*patch.Excerpt)
	}
	if patch.CoverImage != nil {
		post.CoverImage = strings.TrimSpace(*patch.CoverImage)
	}
	if patch.Tags != nil {
		post.Tags = cleanList(*patch.Tags)
	}
	if patch.Published != nil {
		if *patch.Published {
			post.Publish(ts)
		} else {
			post.Published = false
		}
	}
	post.UpdatedAt = ts

	if err := s.validator.ValidateBlogPost(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("blog_post", "update")
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordContentMutation("blog_post", "delete")
	logger.InfoContext(ctx, "Blog post deleted", slog.String("post_id", id))
	return nil
}

// withAuthors attaches each post's author, looking every author up once.
func (s *BlogService) withAuthors(ctx context.Context, posts []domain.BlogPost) ([]domain.BlogPostWithAuthor, error) {
	authors := make(map[string]*domain.Author)
	out := make([]domain.BlogPostWithAuthor, 0, len(posts))
	for _, post := range posts {
		author, seen := authors[post.AuthorID]
		if !seen {
			user, err := s.userRepo.GetByID(ctx, post.AuthorID)
			if err != nil {
				return nil, fmt.Errorf("get author: %w", err)
			}
			if user != nil {
				author = user.AsAuthor()
			}
			authors[post.AuthorID] = author
		}
		out = append(out, domain.BlogPostWithAuthor{BlogPost: post, Author: author})
	}
	return out, nil
}
