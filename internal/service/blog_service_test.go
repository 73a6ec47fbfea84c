package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/mocks"
	"github.com/elhoucineqara/saascompare/internal/service"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

func newBlogService(t *testing.T) (*service.BlogService, *mocks.MockBlogPostRepository, *mocks.MockUserRepository) {
	posts := mocks.NewMockBlogPostRepository(t)
	users := mocks.NewMockUserRepository(t)
	return service.NewBlogService(posts, users, validator.NewValidator()), posts, users
}

func ptr[T any](v T) *T { return &v }

func TestBlogService_ListPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the limit and looks each author up once", func(t *testing.T) {
		svc, posts, users := newBlogService(t)

		posts.EXPECT().List(mock.Anything, domain.BlogPostFilter{PublishedOnly: true, Limit: service.DefaultBlogListLimit}).
			Return([]domain.BlogPost{
				{ID: "p1", AuthorID: "u1", Published: true},
				{ID: "p2", AuthorID: "u1", Published: true},
				{ID: "p3", AuthorID: "u2", Published: true},
			}, nil)
		users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&domain.User{ID: "u1", Name: "Admin", PasswordHash: "secret"}, nil).Once()
		users.EXPECT().GetByID(mock.Anything, "u2").Return(nil, nil).Once()

		out, err := svc.ListPublished(ctx, 0)

		require.NoError(t, err)
		require.Len(t, out, 3)
		require.NotNil(t, out[0].Author)
		assert.Equal(t, "Admin", out[0].Author.Name)
		assert.Same(t, out[0].Author, out[1].Author)
		assert.Nil(t, out[2].Author)
	})

	t.Run("explicit limit is passed through", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().List(mock.Anything, domain.BlogPostFilter{PublishedOnly: true, Limit: 3}).
			Return([]domain.BlogPost{}, nil)

		out, err := svc.ListPublished(ctx, 3)

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestBlogService_GetPublishedBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns published post", func(t *testing.T) {
		svc, posts, users := newBlogService(t)

		posts.EXPECT().GetBySlug(mock.Anything, "crm-guide").
			Return(&domain.BlogPost{ID: "p1", Slug: "crm-guide", AuthorID: "u1", Published: true}, nil)
		users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Admin"}, nil)

		post, err := svc.GetPublishedBySlug(ctx, "crm-guide")

		require.NoError(t, err)
		assert.Equal(t, "p1", post.ID)
		assert.Equal(t, "Admin", post.Author.Name)
	})

	t.Run("drafts are not found", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetBySlug(mock.Anything, "draft").
			Return(&domain.BlogPost{ID: "p1", Slug: "draft"}, nil)

		_, err := svc.GetPublishedBySlug(ctx, "draft")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetBySlug(mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.GetPublishedBySlug(ctx, "ghost")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBlogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("published post is stamped", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		post, err := svc.Create(ctx, "u1", domain.BlogPostInput{
			Title:     "Best CRM Software in 2024",
			Content:   "# Intro",
			Tags:      []string{"crm", " "},
			Published: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "best-crm-software-in-2024", post.Slug)
		assert.Equal(t, "u1", post.AuthorID)
		assert.Equal(t, []string{"crm"}, post.Tags)
		assert.True(t, post.Published)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, post.CreatedAt, *post.PublishedAt)
	})

	t.Run("draft has no publication stamp", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		post, err := svc.Create(ctx, "u1", domain.BlogPostInput{Title: "Draft", Content: "wip"})

		require.NoError(t, err)
		assert.False(t, post.Published)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("missing content is rejected", func(t *testing.T) {
		svc, _, _ := newBlogService(t)

		_, err := svc.Create(ctx, "u1", domain.BlogPostInput{Title: "Empty"})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "content_required", ve.Fields["content"])
	})
}

func TestBlogService_Update(t *testing.T) {
	ctx := context.Background()
	created := mustTime("2024-01-10T08:00:00Z")

	draft := func() *domain.BlogPost {
		return &domain.BlogPost{
			ID: "p1", Title: "CRM Guide", Slug: "crm-guide", Content: "body",
			Tags: []string{"crm"}, AuthorID: "u1", CreatedAt: created, UpdatedAt: created,
		}
	}

	t.Run("applies only the given fields", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(draft(), nil)
		posts.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		post, err := svc.Update(ctx, "p1", domain.BlogPostPatch{Excerpt: ptr("Short summary")})

		require.NoError(t, err)
		assert.Equal(t, "CRM Guide", post.Title)
		assert.Equal(t, "crm-guide", post.Slug)
		assert.Equal(t, "body", post.Content)
		assert.Equal(t, "Short summary", post.Excerpt)
		assert.Equal(t, []string{"crm"}, post.Tags)
		assert.True(t, post.UpdatedAt.After(created))
	})

	t.Run("first publication stamps publishedAt", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(draft(), nil)
		posts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		post, err := svc.Update(ctx, "p1", domain.BlogPostPatch{Published: ptr(true)})

		require.NoError(t, err)
		assert.True(t, post.Published)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, post.UpdatedAt, *post.PublishedAt)
	})

	t.Run("republishing keeps the original stamp", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)
		stamped := draft()
		stamped.Published = true
		stamped.PublishedAt = ptr(created)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(stamped, nil)
		posts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		post, err := svc.Update(ctx, "p1", domain.BlogPostPatch{Published: ptr(true), Title: ptr("CRM Guide 2")})

		require.NoError(t, err)
		assert.Equal(t, created, *post.PublishedAt)
		assert.Equal(t, "CRM Guide 2", post.Title)
	})

	t.Run("unpublishing keeps the stamp", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)
		stamped := draft()
		stamped.Published = true
		stamped.PublishedAt = ptr(created)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(stamped, nil)
		posts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		post, err := svc.Update(ctx, "p1", domain.BlogPostPatch{Published: ptr(false)})

		require.NoError(t, err)
		assert.False(t, post.Published)
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, created, *post.PublishedAt)
	})

	t.Run("blank slug is derived from the title", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(draft(), nil)
		posts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		post, err := svc.Update(ctx, "p1", domain.BlogPostPatch{Title: ptr("Sales Tools"), Slug: ptr("")})

		require.NoError(t, err)
		assert.Equal(t, "sales-tools", post.Slug)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		svc, posts, _ := newBlogService(t)

		posts.EXPECT().GetByID(mock.Anything, "p1").Return(nil, nil)

		_, err := svc.Update(ctx, "p1", domain.BlogPostPatch{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBlogService_Delete(t *testing.T) {
	svc, posts, _ := newBlogService(t)

	posts.EXPECT().Delete(mock.Anything, "p1").Return(domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "p1"), domain.ErrNotFound)
}
