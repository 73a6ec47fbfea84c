package domain

import "time"

// BlogPost is an article written by a user.
type BlogPost struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Slug        string     `json:"slug" bson:"slug"`
	Content     string     `json:"content" bson:"content"`
	Excerpt     string     `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Tags        []string   `json:"tags" bson:"tags"`
	Published   bool       `json:"published" bson:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	AuthorID    string     `json:"authorId" bson:"authorId"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Publish marks the post as published. The first publication stamps
// PublishedAt; later calls leave an existing stamp untouched.
func (p *BlogPost) Publish(now time.Time) {
	p.Published = true
	if p.PublishedAt == nil {
		t := now
		p.PublishedAt = &t
	}
}

// BlogPostWithAuthor pairs a post with its author's public profile.
type BlogPostWithAuthor struct {
	BlogPost
	Author *Author `json:"author,omitempty"`
}

// Author is the public projection of a user shown next to posts.
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// BlogPostFilter narrows a blog post listing. Published listings are ordered
// by publishedAt, newest first; otherwise by creation time, newest first.
type BlogPostFilter struct {
	PublishedOnly bool
	Limit         int
}
