// Package domain holds DTOs for scoring stats http and service contracts
package domain

import "time"

// Window bounds in days
const (
	DefaultDays = 7
	MaxDays     = 90
)

// Event is one scoring request as stored in the events table
type Event struct {
	Kind        string
	CharCount   int
	Paragraphs  int
	Probability float64
	Label       string
	Tier        string
	Lang        string
	Latency     time.Duration
	Client      string
	At          time.Time
}

// SummaryInput is read from the query string
type SummaryInput struct {
	Days int `query:"days" json:"days" validate:"min=1,max=90"`
}

// Bucket counts requests for one key
type Bucket struct {
	Key      string `json:"key"`
	Requests uint64 `json:"requests"`
}

// DayRow is one calendar day in UTC
type DayRow struct {
	Day             string  `json:"day"`
	Requests        uint64  `json:"requests"`
	MeanProbability float64 `json:"mean_probability"`
}

// Summary aggregates scoring events over the window
type Summary struct {
	Days            int       `json:"days"`
	Since           time.Time `json:"since"`
	Total           uint64    `json:"total"`
	MeanProbability float64   `json:"mean_probability"`
	ByLabel         []Bucket  `json:"by_label"`
	ByTier          []Bucket  `json:"by_tier"`
	ByKind          []Bucket  `json:"by_kind"`
	ByLang          []Bucket  `json:"by_lang"`
	ByDay           []DayRow  `json:"by_day"`
}
