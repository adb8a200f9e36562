package model

const (
	// FallbackCategory marks articles the model could not classify.
	FallbackCategory = "미분류"
	// FallbackRegion is used when no region can be determined.
	FallbackRegion = "전국"
)

// ArticleInput is one raw article as received from the backend.
// Body may still contain HTML markup.
type ArticleInput struct {
	ID    string
	Title string
	Body  string
}

// ArticleResult is the classification outcome for a single article.
// ID is copied verbatim from the input.
type ArticleResult struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Region   string `json:"region"`
}

// Fallback returns the result substituted when classification fails.
func Fallback(id string) ArticleResult {
	return ArticleResult{
		ID:       id,
		Summary:  "",
		Category: FallbackCategory,
		Region:   FallbackRegion,
	}
}
