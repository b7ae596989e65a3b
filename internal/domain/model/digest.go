package model

import "time"

// Digest is the rendered output of one run before it is serialized.
type Digest struct {
	Title       string
	Articles    []Article
	GeneratedAt time.Time
	Location    *time.Location
}
