package models

import (
	"time"

	"github.com/google/uuid"
)

// Artwork source kinds
const (
	SourceGenerated = "generated"
	SourceSourced   = "sourced"
)

// Artwork is one row of the artwork library: metadata for a stored image.
// The pipeline creates rows with IsApproved=false; approval happens later
// through the PATCH endpoint.
type Artwork struct {
	ID          uuid.UUID  `json:"id"`
	Theme       string     `json:"theme"`
	IssueDate   time.Time  `json:"issue_date"`
	Source      string     `json:"source"` // generated|sourced
	Prompt      string     `json:"prompt"`
	StoragePath string     `json:"storage_path"`
	Tags        []string   `json:"tags"`
	IsApproved  bool       `json:"is_approved"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// PublicURL is derived from StoragePath when listing; never persisted.
	PublicURL string `json:"public_url,omitempty"`
}

// StorableImage is the normalized unit the storage agent consumes. It exists
// only for the duration of one pipeline run.
type StorableImage struct {
	Data      []byte
	Prompt    string
	Source    string // generated|sourced
	Theme     string
	IssueDate time.Time
	Tags      []string // defaults to whitespace-split theme when empty
}

// RunRequest is the body of POST /v1/pipeline.
type RunRequest struct {
	Theme          string `json:"theme"`
	IssueDate      string `json:"issueDate"` // ISO date, e.g. 2025-12-01
	SourcedCount   int    `json:"sourcedCount"`
	GeneratedCount int    `json:"generatedCount"`
}

// PipelineStats is the orchestrator's report for one run. The accounting
// invariant holds for every completed run:
// Stored + Failed == GeneratedProduced + SourcedFetched.
type PipelineStats struct {
	SourcedFetched    int `json:"sourcedFetched"`
	GeneratedProduced int `json:"generatedProduced"`
	Stored            int `json:"stored"`
	Failed            int `json:"failed"`
}

// RunResponse is the body of a successful pipeline trigger.
type RunResponse struct {
	Success bool           `json:"success"`
	Stats   *PipelineStats `json:"stats"`
}

// UpdateArtworkRequest is the body of PATCH /v1/artwork.
type UpdateArtworkRequest struct {
	ID         string    `json:"id"`
	IsApproved *bool     `json:"isApproved,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
}
