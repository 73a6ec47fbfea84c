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

var (
	hubspot    = &domain.Tool{ID: "t-hub", Name: "HubSpot", Slug: "hubspot"}
	salesforce = &domain.Tool{ID: "t-sf", Name: "Salesforce", Slug: "salesforce"}
)

func newComparisonService(t *testing.T) (*service.ComparisonService, *mocks.MockComparisonRepository, *mocks.MockToolRepository) {
	comparisons := mocks.NewMockComparisonRepository(t)
	tools := mocks.NewMockToolRepository(t)
	return service.NewComparisonService(comparisons, tools, validator.NewValidator()), comparisons, tools
}

func TestComparisonService_Compare(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves both tools and the editorial comparison", func(t *testing.T) {
		svc, comparisons, tools := newComparisonService(t)

		tools.EXPECT().GetBySlug(mock.Anything, "hubspot").Return(hubspot, nil)
		tools.EXPECT().GetBySlug(mock.Anything, "salesforce").Return(salesforce, nil)
		comparisons.EXPECT().GetBySlug(mock.Anything, "hubspot-vs-salesforce").
			Return(&domain.Comparison{ID: "c1", Verdict: "HubSpot for SMBs"}, nil)

		view, err := svc.Compare(ctx, "hubspot-vs-salesforce")

		require.NoError(t, err)
		assert.Equal(t, "HubSpot", view.Tools[0].Name)
		assert.Equal(t, "Salesforce", view.Tools[1].Name)
		require.NotNil(t, view.Comparison)
		assert.Equal(t, "HubSpot for SMBs", view.Comparison.Verdict)
	})

	t.Run("works without an editorial comparison", func(t *testing.T) {
		svc, comparisons, tools := newComparisonService(t)

		tools.EXPECT().GetBySlug(mock.Anything, "salesforce").Return(salesforce, nil)
		tools.EXPECT().GetBySlug(mock.Anything, "hubspot").Return(hubspot, nil)
		comparisons.EXPECT().GetBySlug(mock.Anything, "salesforce-vs-hubspot").Return(nil, nil)

		view, err := svc.Compare(ctx, "salesforce-vs-hubspot")

		require.NoError(t, err)
		assert.Nil(t, view.Comparison)
		assert.Equal(t, "salesforce", view.Tools[0].Slug)
	})

	t.Run("malformed slug is not found", func(t *testing.T) {
		svc, _, _ := newComparisonService(t)

		for _, slug := range []string{"hubspot", "-vs-salesforce", "hubspot-vs-"} {
			_, err := svc.Compare(ctx, slug)
			assert.ErrorIs(t, err, domain.ErrNotFound, slug)
		}
	})

	t.Run("unknown tool is not found", func(t *testing.T) {
		svc, _, tools := newComparisonService(t)

		tools.EXPECT().GetBySlug(mock.Anything, "hubspot").Return(hubspot, nil)
		tools.EXPECT().GetBySlug(mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.Compare(ctx, "hubspot-vs-ghost")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestComparisonService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug and title from the tools", func(t *testing.T) {
		svc, comparisons, tools := newComparisonService(t)

		tools.EXPECT().GetByID(mock.Anything, "t-hub").Return(hubspot, nil)
		tools.EXPECT().GetByID(mock.Anything, "t-sf").Return(salesforce, nil)
		comparisons.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comparison")).Return(nil)

		comparison, err := svc.Create(ctx, domain.ComparisonInput{ToolIDs: []string{"t-hub", "t-sf"}})

		require.NoError(t, err)
		assert.Equal(t, "hubspot-vs-salesforce", comparison.Slug)
		assert.Equal(t, "HubSpot vs Salesforce", comparison.Title)
		assert.Equal(t, []string{"t-hub", "t-sf"}, comparison.ToolIDs)
		assert.NotEmpty(t, comparison.ID)
	})

	t.Run("keeps explicit slug and title", func(t *testing.T) {
		svc, comparisons, tools := newComparisonService(t)

		tools.EXPECT().GetByID(mock.Anything, "t-hub").Return(hubspot, nil)
		tools.EXPECT().GetByID(mock.Anything, "t-sf").Return(salesforce, nil)
		comparisons.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		comparison, err := svc.Create(ctx, domain.ComparisonInput{
			ToolIDs: []string{"t-hub", "t-sf"},
			Slug:    "crm-showdown",
			Title:   "The CRM showdown",
		})

		require.NoError(t, err)
		assert.Equal(t, "crm-showdown", comparison.Slug)
		assert.Equal(t, "The CRM showdown", comparison.Title)
	})

	tests := []struct {
		name  string
		ids   []string
		code  string
		setup func(tools *mocks.MockToolRepository)
	}{
		{name: "no tools", ids: nil, code: "exactly_two_tools_required"},
		{name: "one tool", ids: []string{"t-hub"}, code: "exactly_two_tools_required"},
		{name: "three tools", ids: []string{"a", "b", "c"}, code: "exactly_two_tools_required"},
		{name: "blank ids are dropped", ids: []string{"t-hub", " "}, code: "exactly_two_tools_required"},
		{name: "same tool twice", ids: []string{"t-hub", "t-hub"}, code: "tools_must_differ"},
		{
			name: "unknown tool",
			ids:  []string{"t-hub", "ghost"},
			code: "unknown_tool",
			setup: func(tools *mocks.MockToolRepository) {
				tools.EXPECT().GetByID(mock.Anything, "t-hub").Return(hubspot, nil)
				tools.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, tools := newComparisonService(t)
			if tt.setup != nil {
				tt.setup(tools)
			}

			_, err := svc.Create(ctx, domain.ComparisonInput{ToolIDs: tt.ids})

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Fields["ids"])
		})
	}
}

func TestComparisonService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and keeps creation time", func(t *testing.T) {
		svc, comparisons, tools := newComparisonService(t)
		created := mustTime("2024-05-01T00:00:00Z")

		comparisons.EXPECT().GetByID(mock.Anything, "c1").
			Return(&domain.Comparison{ID: "c1", CreatedAt: created}, nil)
		tools.EXPECT().GetByID(mock.Anything, "t-sf").Return(salesforce, nil)
		tools.EXPECT().GetByID(mock.Anything, "t-hub").Return(hubspot, nil)
		comparisons.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Comparison")).Return(nil)

		comparison, err := svc.Update(ctx, "c1", domain.ComparisonInput{
			ToolIDs: []string{"t-sf", "t-hub"},
			Verdict: "Salesforce for enterprise",
		})

		require.NoError(t, err)
		assert.Equal(t, "c1", comparison.ID)
		assert.Equal(t, created, comparison.CreatedAt)
		assert.Equal(t, "salesforce-vs-hubspot", comparison.Slug)
		assert.Equal(t, "Salesforce for enterprise", comparison.Verdict)
	})

	t.Run("missing comparison is not found", func(t *testing.T) {
		svc, comparisons, _ := newComparisonService(t)

		comparisons.EXPECT().GetByID(mock.Anything, "c1").Return(nil, nil)

		_, err := svc.Update(ctx, "c1", domain.ComparisonInput{ToolIDs: []string{"t-hub", "t-sf"}})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestComparisonService_Delete(t *testing.T) {
	svc, comparisons, _ := newComparisonService(t)

	comparisons.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
}
