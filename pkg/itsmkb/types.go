package itsmkb

import "time"

// ITSMType is an IT service management category.
type ITSMType string

// ITSM categories.
const (
	Incident ITSMType = "Incident"
	Problem  ITSMType = "Problem"
	Change   ITSMType = "Change"
	Release  ITSMType = "Release"
	Request  ITSMType = "Request"
	Other    ITSMType = "Other"
)

// Severity levels accepted on items. Empty severity is allowed.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Sort fields for SearchQuery.SortBy.
const (
	SortCreatedAt = "created_at"
	SortUpdatedAt = "updated_at"
	SortTitle     = "title"
	SortType      = "itsm_type"
	SortSeverity  = "severity"
	SortRelevance = "relevance"
)

// Item is a knowledge-base entry.
type Item struct {
	ID        string
	Type      ITSMType
	Title     string
	Content   string
	Tags      []string
	Severity  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Classification is the outcome of classifying a title and content.
type Classification struct {
	Type       ITSMType
	Confidence float64
	Scores     map[ITSMType]float64
	Reason     string
	// Level is the confidence bucket: high, medium, low or very-low.
	Level string
}

// Suggestion is one category scoring at or above the requested threshold.
type Suggestion struct {
	Type    ITSMType
	Score   float64
	Primary bool
}

// KeywordMatch lists the keywords of one rule found in a text.
type KeywordMatch struct {
	Primary   []string
	Secondary []string
	Score     float64
}

// TypeInfo describes an ITSM category for display.
type TypeInfo struct {
	Name        string
	Description string
	Icon        string
	Priority    string
	Examples    []string
}

// SearchQuery is a full-text search with filters, sorting and pagination.
// The zero value lists every item, most recently updated first.
type SearchQuery struct {
	Text     string
	Types    []ITSMType // any of
	Tags     []string   // any of
	Severity string
	Status   string
	SortBy   string // empty: updated_at
	Order    string // "asc" or "desc" (default)
	Limit    int    // <= 0: no pagination
	Offset   int
}

// Hit is a search result entry. Score is relevance or similarity.
type Hit struct {
	Item  Item
	Score float64
}

// SearchResult is one page of hits.
type SearchResult struct {
	Hits    []Hit
	Total   int
	HasMore bool
	// Error is set when the search failed; Hits is empty then.
	Error string
}

// Facets are item counts per category, tag, severity and status.
type Facets struct {
	Types      map[string]int
	Tags       map[string]int
	Severities map[string]int
	Statuses   map[string]int
	Error      string
}

// StorageInfo summarises the stored collection.
type StorageInfo struct {
	Items int
	Bytes int
	Size  string
}
