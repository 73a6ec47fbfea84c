package domain

import (
	"strings"
	"time"
)

// ComparisonToolCount is the number of tools a comparison pairs.
const ComparisonToolCount = 2

// ComparisonSlugSeparator joins the two tool slugs of a comparison page.
const ComparisonSlugSeparator = "-vs-"

// Comparison is an editorial page pairing exactly two tools head-to-head.
type Comparison struct {
	ID        string    `json:"id" bson:"_id"`
	ToolIDs   []string  `json:"ids" bson:"ids"`
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Verdict   string    `json:"verdict,omitempty" bson:"verdict,omitempty"`
	Content   string    `json:"content,omitempty" bson:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SplitComparisonSlug splits "a-vs-b" into its two tool slugs. Only the
// first two parts count: "a-vs-b-vs-c" yields a and b.
// ok is false when the separator is missing or either side is empty.
func SplitComparisonSlug(slug string) (first, second string, ok bool) {
	parts := strings.Split(slug, ComparisonSlugSeparator)
	if len(parts) < 2 {
		return "", "", false
	}
	first = strings.TrimSpace(parts[0])
	second = strings.TrimSpace(parts[1])
	if first == "" || second == "" {
		return "", "", false
	}
	return first, second, true
}

// ComparisonView is the public head-to-head page: both tools plus the
// editorial comparison when one has been written for the slug.
type ComparisonView struct {
	Slug       string      `json:"slug"`
	Tools      [2]Tool     `json:"tools"`
	Comparison *Comparison `json:"comparison,omitempty"`
}
