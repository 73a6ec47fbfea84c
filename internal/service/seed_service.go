package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/repository"
)

// SeedCatalog is the YAML document loaded by the seed command. Records
// reference each other by natural keys: tools name their category by slug,
// comparisons name their tools by slug and posts name their author by email.
type SeedCatalog struct {
	Users       []SeedUser       `yaml:"users"`
	Categories  []SeedCategory   `yaml:"categories"`
	Tools       []SeedTool       `yaml:"tools"`
	Comparisons []SeedComparison `yaml:"comparisons"`
	BlogPosts   []SeedBlogPost   `yaml:"blogPosts"`
}

// SeedUser is an account in the seed catalog.
type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// SeedCategory is a category in the seed catalog.
type SeedCategory struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// SeedTool is a tool in the seed catalog.
type SeedTool struct {
	Name             string              `yaml:"name"`
	Slug             string              `yaml:"slug"`
	Category         string              `yaml:"category"`
	LogoURL          string              `yaml:"logoUrl"`
	WebsiteURL       string              `yaml:"websiteUrl"`
	AffiliateLink    string              `yaml:"affiliateLink"`
	ShortDescription string              `yaml:"shortDescription"`
	LongReview       string              `yaml:"longReview"`
	Pros             []string            `yaml:"pros"`
	Cons             []string            `yaml:"cons"`
	Features         []string            `yaml:"features"`
	PricingModel     domain.PricingModel `yaml:"pricingModel"`
	StartingPrice    *float64            `yaml:"startingPrice"`
	IsFeatured       bool                `yaml:"isFeatured"`
	AverageRating    float64             `yaml:"averageRating"`
	ReviewCount      int                 `yaml:"reviewCount"`
}

// SeedComparison is a comparison in the seed catalog.
type SeedComparison struct {
	Tools   []string `yaml:"tools"`
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Verdict string   `yaml:"verdict"`
	Content string   `yaml:"content"`
}

// SeedBlogPost is a blog post in the seed catalog.
type SeedBlogPost struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Author     string   `yaml:"author"`
	Content    string   `yaml:"content"`
	Excerpt    string   `yaml:"excerpt"`
	CoverImage string   `yaml:"coverImage"`
	Tags       []string `yaml:"tags"`
	Published  bool     `yaml:"published"`
}

// SeedError describes one catalog record that could not be loaded.
type SeedError struct {
	Entity string `json:"entity"`
	Index  int    `json:"index"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// SeedReport summarizes a seed run.
type SeedReport struct {
	Created  map[string]int `json:"created"`
	Failed   int            `json:"failed"`
	Errors   []SeedError    `json:"errors,omitempty"`
	Duration time.Duration  `json:"duration"`
}

func (r *SeedReport) fail(entity string, index int, key string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, SeedError{Entity: entity, Index: index, Key: key, Reason: err.Error()})
}

// LoadSeedCatalog decodes a YAML catalog. Unknown keys are rejected.
func LoadSeedCatalog(r io.Reader) (*SeedCatalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var catalog SeedCatalog
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog, nil
		}
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return &catalog, nil
}

// SeedService loads a catalog through the regular services so every record
// is validated exactly as an admin write would be.
type SeedService struct {
	store       repository.Resetter
	auth        *AuthService
	categories  *CategoryService
	tools       *ToolService
	comparisons *ComparisonService
	blog        *BlogService
}

// NewSeedService creates a new SeedService.
func NewSeedService(
	store repository.Resetter,
	auth *AuthService,
	categories *CategoryService,
	tools *ToolService,
	comparisons *ComparisonService,
	blog *BlogService,
) *SeedService {
	return &SeedService{
		store:       store,
		auth:        auth,
		categories:  categories,
		tools:       tools,
		comparisons: comparisons,
		blog:        blog,
	}
}

// Seed loads the catalog in dependency order. When reset is set every
// collection is wiped first. Records that fail are reported and skipped;
// records depending on a failed record fail in turn.
func (s *SeedService) Seed(ctx context.Context, catalog *SeedCatalog, reset bool) (*SeedReport, error) {
	start := time.Now()
	report := &SeedReport{Created: map[string]int{}}

	if reset {
		if err := s.store.Reset(ctx); err != nil {
			return nil, fmt.Errorf("reset store: %w", err)
		}
		logger.InfoContext(ctx, "Store reset before seeding")
	}

	userIDs := make(map[string]string)
	for i, u := range catalog.Users {
		role := u.Role
		if role == "" {
			role = domain.RoleUser
		}
		user, err := s.auth.CreateUser(ctx, domain.RegisterInput{Name: u.Name, Email: u.Email, Password: u.Password}, role)
		if err != nil {
			report.fail("user", i, u.Email, err)
			continue
		}
		userIDs[user.Email] = user.ID
		report.Created["users"]++
	}

	categoryIDs := make(map[string]string)
	for i, c := range catalog.Categories {
		category, err := s.categories.Create(ctx, domain.CategoryInput{Name: c.Name, Slug: c.Slug, Description: c.Description})
		if err != nil {
			report.fail("category", i, c.Name, err)
			continue
		}
		categoryIDs[category.Slug] = category.ID
		report.Created["categories"]++
	}

	toolIDs := make(map[string]string)
	for i, t := range catalog.Tools {
		categoryID, ok := categoryIDs[t.Category]
		if !ok {
			report.fail("tool", i, t.Name, domain.NotFoundError("category", t.Category))
			continue
		}
		tool, err := s.tools.Create(ctx, domain.ToolInput{
			Name:             t.Name,
			Slug:             t.Slug,
			LogoURL:          t.LogoURL,
			WebsiteURL:       t.WebsiteURL,
			AffiliateLink:    t.AffiliateLink,
			ShortDescription: t.ShortDescription,
			LongReview:       t.LongReview,
			Pros:             t.Pros,
			Cons:             t.Cons,
			Features:         t.Features,
			CategoryID:       categoryID,
			PricingModel:     t.PricingModel,
			StartingPrice:    t.StartingPrice,
			IsFeatured:       t.IsFeatured,
			AverageRating:    t.AverageRating,
			ReviewCount:      t.ReviewCount,
		})
		if err != nil {
			report.fail("tool", i, t.Name, err)
			continue
		}
		toolIDs[tool.Slug] = tool.ID
		report.Created["tools"]++
	}

	for i, c := range catalog.Comparisons {
		ids := make([]string, 0, len(c.Tools))
		var missing error
		for _, slug := range c.Tools {
			id, ok := toolIDs[slug]
			if !ok {
				missing = domain.NotFoundError("tool", slug)
				break
			}
			ids = append(ids, id)
		}
		if missing != nil {
			report.fail("comparison", i, c.Slug, missing)
			continue
		}
		_, err := s.comparisons.Create(ctx, domain.ComparisonInput{
			ToolIDs: ids, Slug: c.Slug, Title: c.Title, Verdict: c.Verdict, Content: c.Content,
		})
		if err != nil {
			report.fail("comparison", i, c.Slug, err)
			continue
		}
		report.Created["comparisons"]++
	}

	for i, p := range catalog.BlogPosts {
		authorID, ok := userIDs[normalizeEmail(p.Author)]
		if !ok {
			report.fail("blog post", i, p.Title, domain.NotFoundError("user", p.Author))
			continue
		}
		_, err := s.blog.Create(ctx, authorID, domain.BlogPostInput{
			Title:      p.Title,
			Slug:       p.Slug,
			Content:    p.Content,
			Excerpt:    p.Excerpt,
			CoverImage: p.CoverImage,
			Tags:       p.Tags,
			Published:  p.Published,
		})
		if err != nil {
			report.fail("blog post", i, p.Title, err)
			continue
		}
		report.Created["blogPosts"]++
	}

	report.Duration = time.Since(start)
	logger.InfoContext(ctx, "Seed completed",
		slog.Any("created", report.Created),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", report.Duration))
	return report, nil
}
