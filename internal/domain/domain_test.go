package domain

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestIsValidPricingModel(t *testing.T) {
	tests := []struct {
		model PricingModel
		valid bool
	}{
		{PricingFree, true},
		{PricingFreemium, true},
		{PricingPaid, true},
		{PricingContactSales, true},
		{"ContactSales", false},
		{"free", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			if got := IsValidPricingModel(tt.model); got != tt.valid {
				t.Errorf("IsValidPricingModel(%q) = %v, want %v", tt.model, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"user", true},
		{"moderator", false},
		{"", false},
		{"ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HubSpot", "hubspot"},
		{"CRM & Sales", "crm-and-sales"},
		{"Café Notion", "cafe-notion"},
		{"Señor CRM", "senor-crm"},
		{"Übersicht", "ubersicht"},
		{"snake_case title", "snake-case-title"},
		{"  Top 10 SaaS Metrics You Need to Track! ", "top-10-saas-metrics-you-need-to-track"},
		{"Salesforce vs HubSpot: Which CRM is Best for You?", "salesforce-vs-hubspot-which-crm-is-best-for-you"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugify_NonLatinTitlesStayURLSafe(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	for _, in := range []string{"日本語ツール", "Обзор CRM", "Ελληνικά"} {
		got := Slugify(in)
		if !urlSafe.MatchString(got) {
			t.Errorf("Slugify(%q) = %q, want a non-empty URL-safe slug", in, got)
		}
	}
}

func TestSplitComparisonSlug(t *testing.T) {
	tests := []struct {
		slug          string
		first, second string
		ok            bool
	}{
		{"hubspot-vs-salesforce", "hubspot", "salesforce", true},
		{"notion-vs-clickup", "notion", "clickup", true},
		{"hubspot", "", "", false},
		{"-vs-salesforce", "", "", false},
		{"hubspot-vs-", "", "", false},
		{"trello-vs-asana-vs-clickup", "trello", "asana", true},
		{"trello-vs--vs-asana", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			first, second, ok := SplitComparisonSlug(tt.slug)
			if ok != tt.ok || first != tt.first || second != tt.second {
				t.Errorf("SplitComparisonSlug(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.slug, first, second, ok, tt.first, tt.second, tt.ok)
			}
		})
	}
}

func TestBlogPost_Publish(t *testing.T) {
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	post := &BlogPost{}
	post.Publish(first)
	if !post.Published {
		t.Fatal("Publish() did not set Published")
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(first) {
		t.Fatalf("PublishedAt = %v, want %v", post.PublishedAt, first)
	}

	post.Publish(later)
	if !post.PublishedAt.Equal(first) {
		t.Errorf("second Publish() changed PublishedAt to %v", post.PublishedAt)
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Error("session expiring in a minute reported expired")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Error("session at its expiry instant reported valid")
	}
}

func TestErrorHelpers(t *testing.T) {
	if err := ConflictError("tool", "slug", "hubspot"); !errors.Is(err, ErrConflict) {
		t.Errorf("ConflictError does not wrap ErrConflict: %v", err)
	}
	if err := NotFoundError("tool", "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("NotFoundError does not wrap ErrNotFound: %v", err)
	}

	ve := NewValidationError("ids", "exactly_two_tools_required")
	if !IsValidationError(ve) {
		t.Error("IsValidationError(NewValidationError) = false")
	}
	if ve.Fields["ids"] != "exactly_two_tools_required" {
		t.Errorf("Fields = %v", ve.Fields)
	}
	if IsValidationError(ErrNotFound) {
		t.Error("IsValidationError(ErrNotFound) = true")
	}
}

func TestEmptySearchResult(t *testing.T) {
	r := EmptySearchResult()
	if r.Tools == nil || r.Categories == nil || r.Comparisons == nil {
		t.Fatalf("EmptySearchResult has nil groups: %+v", r)
	}
	if len(r.Tools)+len(r.Categories)+len(r.Comparisons) != 0 {
		t.Errorf("EmptySearchResult is not empty: %+v", r)
	}
}
