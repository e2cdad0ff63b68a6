package app

import "msys2-buildqueue/internal/types"

type PlanRequest struct {
	SnapshotPath     string
	SnapshotURL      string
	OutputDir        string
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

type PlanResult struct {
	Entries   []types.PlanEntry
	OutputDir string
}

type RemovalsRequest struct {
	SnapshotPath     string
	SnapshotURL      string
	OutputDir        string
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

type RemovalsResult struct {
	Entries   []types.Removal
	OutputDir string
}

type SearchRequest struct {
	SnapshotPath string
	SnapshotURL  string
	Query        string
	Type         string

	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

// SourceSummary describes one matched source package.
type SourceSummary struct {
	Name     string `json:"name"`
	RealName string `json:"realname,omitempty"`
	Version  string `json:"version"`
}

type SearchResult struct {
	Query string          `json:"query"`
	Type  string          `json:"qtype"`
	Exact *SourceSummary  `json:"exact,omitempty"`
	Other []SourceSummary `json:"other"`
}
