package models

import (
	"time"

	"gorm.io/gorm"
)

// DigestType discriminates the format of a generated digest
type DigestType string

const (
	DigestTypeSummary    DigestType = "summary"
	DigestTypeDetailed   DigestType = "detailed"
	DigestTypeHighlights DigestType = "highlights"
	DigestTypeConcise    DigestType = "concise"
)

// Digest stores one generated digest for a video. Reuse is keyed by
// (video, digest type): an existing non-empty digest of the same type is
// never regenerated implicitly.
type Digest struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	VideoID          uint           `gorm:"not null;index:idx_digests_video_type" json:"video_id"`
	DigestType       DigestType     `gorm:"not null;index:idx_digests_video_type" json:"digest_type"`
	Content          string         `gorm:"type:text;not null" json:"content"`
	Model            string         `json:"model"`
	PromptTokens     int            `json:"prompt_tokens"`
	CompletionTokens int            `json:"completion_tokens"`
	TotalTokens      int            `json:"total_tokens"`
	EstimatedCost    float64        `json:"estimated_cost"`
	GeneratedAt      time.Time      `json:"generated_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasContent reports whether the digest can satisfy a reuse lookup
func (d *Digest) HasContent() bool {
	return d.Content != ""
}

// TableName specifies the table name for GORM
func (Digest) TableName() string {
	return "digests"
}

// ProcessingLog records usage and cost for one real LLM call
type ProcessingLog struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	VideoID      uint           `gorm:"not null;index" json:"video_id"`
	RequestType  string         `gorm:"not null" json:"request_type"`
	Model        string         `json:"model"`
	TokensUsed   int            `json:"tokens_used"`
	CostEstimate float64        `json:"cost_estimate"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (ProcessingLog) TableName() string {
	return "processing_logs"
}
