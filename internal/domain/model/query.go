package model

// DefaultLimit is the number of articles requested per run.
const DefaultLimit = 5

// Query describes what to ask the news provider for.
type Query struct {
	Term     string
	Language string
	Category string
	Country  string
	Limit    int
}

// Headlines reports whether the query targets the top-headlines listing.
func (q Query) Headlines() bool {
	return q.Category != "" || q.Country != ""
}

// EffectiveLimit returns Limit, or DefaultLimit when unset.
func (q Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}
