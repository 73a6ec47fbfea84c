package service

import (
	"strings"
	"time"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const (
	// MaxListLimit bounds caller-supplied listing limits.
	MaxListLimit = 100
	// DefaultBlogListLimit is the public blog listing size when none is given.
	DefaultBlogListLimit = 10
)

// now returns the current time truncated to the precision both stores keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// clampLimit maps non-positive limits to def and caps the rest at MaxListLimit.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// cleanList trims every entry and drops blanks.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// slugOr returns the trimmed slug, or one derived from fallback when empty.
func slugOr(slug, fallback string) string {
	if slug = strings.TrimSpace(slug); slug != "" {
		return slug
	}
	return domain.Slugify(fallback)
}
