package search

// PostRecord is the data indexed per blog post.
type PostRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// Result is a single search hit returned to the caller.
type Result struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// Query describes a search request over published blog posts.
type Query struct {
	Text     string
	Category string // empty = all categories
	Limit    int
	Offset   int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute a full-text search.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// Indexer can push blog posts into a search index.
type Indexer interface {
	IndexPost(post PostRecord) error
	DeletePost(id string) error
	IndexPosts(posts []PostRecord) error
}

// Engine is a full search backend, queryable and indexable. Meili is the
// only implementation; the Service facade degrades to the PostFinder
// fallback when no engine is configured or the engine is unhealthy.
type Engine interface {
	Searcher
	Indexer
}
