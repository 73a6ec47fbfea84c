package domain

// ToolSuggestion is the display projection of a tool in search results.
type ToolSuggestion struct {
	ID               string `json:"id" bson:"_id"`
	Name             string `json:"name" bson:"name"`
	Slug             string `json:"slug" bson:"slug"`
	LogoURL          string `json:"logoUrl" bson:"logoUrl"`
	ShortDescription string `json:"shortDescription" bson:"shortDescription"`
}

// CategorySuggestion is the display projection of a category in search results.
type CategorySuggestion struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

// ComparisonSuggestion is the display projection of a comparison in search results.
type ComparisonSuggestion struct {
	ID    string `json:"id" bson:"_id"`
	Title string `json:"title" bson:"title"`
	Slug  string `json:"slug" bson:"slug"`
}

// SearchResult groups typeahead suggestions by entity type.
type SearchResult struct {
	Tools       []ToolSuggestion       `json:"tools"`
	Categories  []CategorySuggestion   `json:"categories"`
	Comparisons []ComparisonSuggestion `json:"comparisons"`
}

// EmptySearchResult returns a result with all three groups present and empty.
func EmptySearchResult() *SearchResult {
	return &SearchResult{
		Tools:       []ToolSuggestion{},
		Categories:  []CategorySuggestion{},
		Comparisons: []ComparisonSuggestion{},
	}
}
