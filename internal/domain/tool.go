package domain

import "time"

// PricingModel describes how a tool charges its customers.
type PricingModel string

const (
	PricingFree         PricingModel = "Free"
	PricingFreemium     PricingModel = "Freemium"
	PricingPaid         PricingModel = "Paid"
	PricingContactSales PricingModel = "Contact Sales"
)

// ValidPricingModels contains all valid pricing models.
var ValidPricingModels = []PricingModel{PricingFree, PricingFreemium, PricingPaid, PricingContactSales}

// IsValidPricingModel checks if a pricing model is valid.
func IsValidPricingModel(model PricingModel) bool {
	for _, m := range ValidPricingModels {
		if m == model {
			return true
		}
	}
	return false
}

// Tool represents a catalogued SaaS product with review and pricing metadata.
type Tool struct {
	ID               string       `json:"id" bson:"_id"`
	Name             string       `json:"name" bson:"name"`
	Slug             string       `json:"slug" bson:"slug"`
	LogoURL          string       `json:"logoUrl" bson:"logoUrl"`
	WebsiteURL       string       `json:"websiteUrl" bson:"websiteUrl"`
	AffiliateLink    string       `json:"affiliateLink,omitempty" bson:"affiliateLink,omitempty"`
	ShortDescription string       `json:"shortDescription" bson:"shortDescription"`
	LongReview       string       `json:"longReview,omitempty" bson:"longReview,omitempty"`
	Pros             []string     `json:"pros" bson:"pros"`
	Cons             []string     `json:"cons" bson:"cons"`
	Features         []string     `json:"features" bson:"features"`
	CategoryID       string       `json:"categoryId" bson:"categoryId"`
	PricingModel     PricingModel `json:"pricingModel" bson:"pricingModel"`
	StartingPrice    *float64     `json:"startingPrice,omitempty" bson:"startingPrice,omitempty"`
	IsFeatured       bool         `json:"isFeatured" bson:"isFeatured"`
	AverageRating    float64      `json:"averageRating" bson:"averageRating"`
	ReviewCount      int          `json:"reviewCount" bson:"reviewCount"`
	CreatedAt        time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// ToolFilter narrows a tool listing.
type ToolFilter struct {
	CategoryID   string
	FeaturedOnly bool
	// OrderByRank sorts featured tools first, then by average rating.
	// Otherwise tools are returned newest first.
	OrderByRank bool
	Limit       int
}

// ToolWithCategory pairs a tool with its resolved category.
type ToolWithCategory struct {
	Tool
	Category *Category `json:"category,omitempty"`
}

// ToolQuery is the public tool listing request. CategorySlug, when set,
// must name an existing category.
type ToolQuery struct {
	CategorySlug string
	FeaturedOnly bool
	Limit        int
}
