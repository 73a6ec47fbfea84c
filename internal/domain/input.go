package domain

// ToolInput carries the writable fields of a tool.
type ToolInput struct {
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	LogoURL          string       `json:"logoUrl"`
	WebsiteURL       string       `json:"websiteUrl"`
	AffiliateLink    string       `json:"affiliateLink"`
	ShortDescription string       `json:"shortDescription"`
	LongReview       string       `json:"longReview"`
	Pros             []string     `json:"pros"`
	Cons             []string     `json:"cons"`
	Features         []string     `json:"features"`
	CategoryID       string       `json:"categoryId"`
	PricingModel     PricingModel `json:"pricingModel"`
	StartingPrice    *float64     `json:"startingPrice"`
	IsFeatured       bool         `json:"isFeatured"`
	AverageRating    float64      `json:"averageRating"`
	ReviewCount      int          `json:"reviewCount"`
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ComparisonInput carries the writable fields of a comparison.
type ComparisonInput struct {
	ToolIDs []string `json:"ids"`
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Verdict string   `json:"verdict"`
	Content string   `json:"content"`
}

// BlogPostInput carries the fields of a new blog post.
type BlogPostInput struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

// BlogPostPatch is a partial update; nil fields are left unchanged.
type BlogPostPatch struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

// RegisterInput carries a self-service account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
