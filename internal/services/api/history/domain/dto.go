// Package domain holds DTOs for analysis history http and service contracts
package domain

import "time"

// List window bounds
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Entry is one recorded scoring request
type Entry struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Preview          string    `json:"preview"`
	CharCount        int       `json:"char_count"`
	Probability      float64   `json:"ai_probability"`
	Label            string    `json:"prediction"`
	Tier             string    `json:"confidence"`
	Paragraphs       int       `json:"paragraph_count"`
	ParagraphAverage float64   `json:"paragraph_average"`
	Client           string    `json:"client,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ListInput is read from the query string
type ListInput struct {
	Limit int `query:"limit" json:"limit" validate:"min=1,max=200"`
}

// ListResult is the history page, newest first
type ListResult struct {
	Items []Entry `json:"items"`
	Count int     `json:"count"`
}

// ClearResult reports how many entries were removed
type ClearResult struct {
	Deleted int64 `json:"deleted"`
}
