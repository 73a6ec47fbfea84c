package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

func validTool() *domain.Tool {
	price := 0.0
	return &domain.Tool{
		ID:               "123e4567-e89b-12d3-a456-426614174000",
		Name:             "HubSpot",
		Slug:             "hubspot",
		LogoURL:          "https://logo.clearbit.com/hubspot.com",
		WebsiteURL:       "https://www.hubspot.com",
		ShortDescription: "A leading CRM platform.",
		CategoryID:       "223e4567-e89b-12d3-a456-426614174000",
		PricingModel:     domain.PricingFreemium,
		StartingPrice:    &price,
		AverageRating:    4.5,
	}
}

func TestValidateTool(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(tool *domain.Tool)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid tool",
			mutate:  func(tool *domain.Tool) {},
			wantErr: false,
		},
		{
			name:    "contact sales pricing",
			mutate:  func(tool *domain.Tool) { tool.PricingModel = domain.PricingContactSales },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(tool *domain.Tool) { tool.Name = "" },
			wantErr: true,
			errMsg:  "name_required",
		},
		{
			name:    "name too long",
			mutate:  func(tool *domain.Tool) { tool.Name = strings.Repeat("a", 101) },
			wantErr: true,
			errMsg:  "name_too_long",
		},
		{
			name:    "slug with uppercase",
			mutate:  func(tool *domain.Tool) { tool.Slug = "HubSpot" },
			wantErr: true,
			errMsg:  "invalid_slug_format",
		},
		{
			name:    "slug with spaces",
			mutate:  func(tool *domain.Tool) { tool.Slug = "hub spot" },
			wantErr: true,
			errMsg:  "invalid_slug_format",
		},
		{
			name:    "invalid website url",
			mutate:  func(tool *domain.Tool) { tool.WebsiteURL = "not a url" },
			wantErr: true,
			errMsg:  "invalid_website_url",
		},
		{
			name:    "short description too long",
			mutate:  func(tool *domain.Tool) { tool.ShortDescription = strings.Repeat("x", 201) },
			wantErr: true,
			errMsg:  "short_description_too_long",
		},
		{
			name:    "missing category",
			mutate:  func(tool *domain.Tool) { tool.CategoryID = "" },
			wantErr: true,
			errMsg:  "category_required",
		},
		{
			name:    "unknown pricing model",
			mutate:  func(tool *domain.Tool) { tool.PricingModel = "ContactSales" },
			wantErr: true,
			errMsg:  "invalid_pricing_model",
		},
		{
			name: "negative starting price",
			mutate: func(tool *domain.Tool) {
				price := -1.0
				tool.StartingPrice = &price
			},
			wantErr: true,
			errMsg:  "starting_price_negative",
		},
		{
			name:    "rating above five",
			mutate:  func(tool *domain.Tool) { tool.AverageRating = 5.5 },
			wantErr: true,
			errMsg:  "average_rating_out_of_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := validTool()
			tt.mutate(tool)
			err := v.ValidateTool(tool)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTool() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !domain.IsValidationError(err) {
					t.Errorf("ValidateTool() error %T is not a ValidationError", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateTool() error = %v, want to contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateTool_FieldNames(t *testing.T) {
	v := NewValidator()
	tool := validTool()
	tool.LogoURL = ""

	err := v.ValidateTool(tool)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("ValidateTool() error = %v, want ValidationError", err)
	}
	if ve.Fields["logoUrl"] != "logo_url_required" {
		t.Errorf("Fields = %v, want logoUrl=logo_url_required", ve.Fields)
	}
}

func TestValidateCategory(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		category *domain.Category
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid category",
			category: &domain.Category{Name: "CRM & Sales", Slug: "crm-and-sales"},
			wantErr:  false,
		},
		{
			name:     "missing name",
			category: &domain.Category{Slug: "crm"},
			wantErr:  true,
			errMsg:   "name_required",
		},
		{
			name:     "missing slug",
			category: &domain.Category{Name: "CRM"},
			wantErr:  true,
			errMsg:   "slug_required",
		},
		{
			name:     "trailing hyphen",
			category: &domain.Category{Name: "CRM", Slug: "crm-"},
			wantErr:  true,
			errMsg:   "invalid_slug_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCategory(tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateCategory() error = %v, want to contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateComparison(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		comparison *domain.Comparison
		wantErr    bool
		errMsg     string
	}{
		{
			name: "valid comparison",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a", "tool-b"},
				Slug:    "hubspot-vs-salesforce",
				Title:   "HubSpot vs Salesforce",
			},
			wantErr: false,
		},
		{
			name: "no tools",
			comparison: &domain.Comparison{
				Slug:  "hubspot-vs-salesforce",
				Title: "HubSpot vs Salesforce",
			},
			wantErr: true,
			errMsg:  "ids_required",
		},
		{
			name: "one tool",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a"},
				Slug:    "hubspot-vs-salesforce",
				Title:   "HubSpot vs Salesforce",
			},
			wantErr: true,
			errMsg:  "exactly_two_tools_required",
		},
		{
			name: "three tools",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a", "tool-b", "tool-c"},
				Slug:    "hubspot-vs-salesforce",
				Title:   "HubSpot vs Salesforce",
			},
			wantErr: true,
			errMsg:  "exactly_two_tools_required",
		},
		{
			name: "empty tool id",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a", ""},
				Slug:    "hubspot-vs-salesforce",
				Title:   "HubSpot vs Salesforce",
			},
			wantErr: true,
			errMsg:  "tool_id_required",
		},
		{
			name: "same tool twice",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a", "tool-a"},
				Slug:    "hubspot-vs-hubspot",
				Title:   "HubSpot vs HubSpot",
			},
			wantErr: true,
			errMsg:  "tools_must_differ",
		},
		{
			name: "missing title",
			comparison: &domain.Comparison{
				ToolIDs: []string{"tool-a", "tool-b"},
				Slug:    "hubspot-vs-salesforce",
			},
			wantErr: true,
			errMsg:  "title_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateComparison(tt.comparison)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComparison() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateComparison() error = %v, want to contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateBlogPost(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	tests := []struct {
		name    string
		post    *domain.BlogPost
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid draft",
			post: &domain.BlogPost{
				Title:    "Top 10 SaaS Metrics",
				Slug:     "top-10-saas-metrics",
				Content:  "# Metrics",
				AuthorID: "author-1",
			},
			wantErr: false,
		},
		{
			name: "valid published post",
			post: &domain.BlogPost{
				Title:       "Top 10 SaaS Metrics",
				Slug:        "top-10-saas-metrics",
				Content:     "# Metrics",
				AuthorID:    "author-1",
				Published:   true,
				PublishedAt: &now,
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &domain.BlogPost{
				Slug:     "top-10-saas-metrics",
				Content:  "# Metrics",
				AuthorID: "author-1",
			},
			wantErr: true,
			errMsg:  "title_required",
		},
		{
			name: "missing content",
			post: &domain.BlogPost{
				Title:    "Top 10 SaaS Metrics",
				Slug:     "top-10-saas-metrics",
				AuthorID: "author-1",
			},
			wantErr: true,
			errMsg:  "content_required",
		},
		{
			name: "published without stamp",
			post: &domain.BlogPost{
				Title:     "Top 10 SaaS Metrics",
				Slug:      "top-10-saas-metrics",
				Content:   "# Metrics",
				AuthorID:  "author-1",
				Published: true,
			},
			wantErr: true,
			errMsg:  "published_requires_published_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBlogPost(tt.post)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBlogPost() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateBlogPost() error = %v, want to contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid user",
			user: &domain.User{
				Email:        "test@example.com",
				Name:         "John Doe",
				Role:         "user",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: false,
		},
		{
			name: "valid admin",
			user: &domain.User{
				Email:        "admin@example.com",
				Name:         "Admin User",
				Role:         "admin",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: false,
		},
		{
			name: "invalid email format",
			user: &domain.User{
				Email:        "invalid-email",
				Name:         "John Doe",
				Role:         "user",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "invalid_email_format",
		},
		{
			name: "moderator role is not supported",
			user: &domain.User{
				Email:        "test@example.com",
				Name:         "John Doe",
				Role:         "moderator",
				PasswordHash: "$2a$10$hash",
			},
			wantErr: true,
			errMsg:  "invalid_role",
		},
		{
			name: "missing password hash",
			user: &domain.User{
				Email: "test@example.com",
				Name:  "John Doe",
				Role:  "user",
			},
			wantErr: true,
			errMsg:  "password_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUser(tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUser() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateUser() error = %v, want to contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateUser_AcceptsEveryDomainRole(t *testing.T) {
	v := NewValidator()

	for _, role := range domain.ValidRoles {
		user := &domain.User{
			Email:        "test@example.com",
			Name:         "John Doe",
			Role:         role,
			PasswordHash: "$2a$10$hash",
		}
		if err := v.ValidateUser(user); err != nil {
			t.Errorf("ValidateUser() with role %q error = %v", role, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	if err := v.ValidatePassword("password123"); err != nil {
		t.Errorf("ValidatePassword(valid) error = %v", err)
	}
	if err := v.ValidatePassword("short"); err == nil || !strings.Contains(err.Error(), "password_too_short") {
		t.Errorf("ValidatePassword(short) error = %v, want password_too_short", err)
	}
	if err := v.ValidatePassword(""); err == nil || !strings.Contains(err.Error(), "password_required") {
		t.Errorf("ValidatePassword(empty) error = %v, want password_required", err)
	}
}
