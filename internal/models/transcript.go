package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TranscriptStatus represents the processing state of a transcript row
type TranscriptStatus string

const (
	TranscriptStatusPending   TranscriptStatus = "PENDING"
	TranscriptStatusProcessed TranscriptStatus = "PROCESSED"
	TranscriptStatusFailed    TranscriptStatus = "FAILED"
)

// TranscriptSource indicates where the transcript text came from
type TranscriptSource string

const (
	TranscriptSourceManual      TranscriptSource = "manual"      // Human-authored captions
	TranscriptSourceAuto        TranscriptSource = "auto"        // Auto-generated captions
	TranscriptSourcePlaceholder TranscriptSource = "placeholder" // No captions existed
	TranscriptSourceError       TranscriptSource = "error"       // Acquisition failed
)

// ErrorLog stores structured error detail as a JSON column
type ErrorLog map[string]interface{}

// Value implements driver.Valuer interface for ErrorLog
func (e ErrorLog) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner interface for ErrorLog
func (e *ErrorLog) Scan(value interface{}) error {
	if value == nil {
		*e = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, e)
}

// Transcript stores one acquired (or placeholder) transcript for a video.
// A video may accumulate several rows over reprocess runs; the pipeline always
// selects the most recently PROCESSED one.
type Transcript struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	VideoID     uint             `gorm:"not null;index" json:"video_id"`
	Content     *string          `gorm:"type:text" json:"content"`
	Source      TranscriptSource `json:"source"`
	Status      TranscriptStatus `gorm:"default:'PENDING';index" json:"status"`
	FetchedAt   *time.Time       `json:"fetched_at"`
	ProcessedAt *time.Time       `json:"processed_at"`
	ErrorLog    ErrorLog         `gorm:"type:json" json:"error_log,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// IsProcessed returns true once the transcript is usable for summarization
func (t *Transcript) IsProcessed() bool {
	return t.Status == TranscriptStatusProcessed
}

// Text returns the content, or an empty string when it was never fetched
func (t *Transcript) Text() string {
	if t.Content == nil {
		return ""
	}
	return *t.Content
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}
