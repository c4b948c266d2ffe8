package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ProcessingStatus represents where a video is in the digest pipeline
type ProcessingStatus string

const (
	StatusPending     ProcessingStatus = "PENDING"
	StatusProcessing  ProcessingStatus = "PROCESSING"
	StatusSummarizing ProcessingStatus = "SUMMARIZING"
	StatusCompleted   ProcessingStatus = "COMPLETED"
	StatusFailed      ProcessingStatus = "FAILED"
)

// StringList stores a list of strings as a JSON column
type StringList []string

// Value implements driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// Chapter is a normalized chapter marker from the source metadata
type Chapter struct {
	Start     float64  `json:"start"`               // Offset in seconds
	End       *float64 `json:"end,omitempty"`       // Optional end offset in seconds
	Timestamp string   `json:"timestamp"`           // Human-readable MM:SS
	Title     string   `json:"title"`
}

// ChapterList stores normalized chapters as a JSON column
type ChapterList []Chapter

// Value implements driver.Valuer interface for ChapterList
func (c ChapterList) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface for ChapterList
func (c *ChapterList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, c)
}

// Video represents a submitted video tracked through the digest pipeline
type Video struct {
	gorm.Model
	// Identity from the scraping backend
	SourceID string `json:"source_id" gorm:"uniqueIndex;not null"`
	URL      string `json:"url" gorm:"not null"`

	// Descriptive fields
	Title        string      `json:"title" gorm:"not null"`
	Description  string      `json:"description" gorm:"type:text"`
	Duration     int         `json:"duration"` // Duration in seconds
	ThumbnailURL string      `json:"thumbnail_url"`
	ChannelID    string      `json:"channel_id"`
	ChannelTitle string      `json:"channel_title"`
	UploadDate   string      `json:"upload_date"`
	ViewCount    *int64      `json:"view_count"`
	LikeCount    *int64      `json:"like_count"`
	Tags         StringList  `json:"tags" gorm:"type:json"`
	Categories   StringList  `json:"categories" gorm:"type:json"`
	Chapters     ChapterList `json:"chapters" gorm:"type:json"`

	// Pipeline state
	Status          ProcessingStatus `json:"status" gorm:"default:'PENDING';index"`
	Processed       bool             `json:"processed" gorm:"default:false"`
	ErrorMessage    string           `json:"error_message,omitempty"`
	LastProcessedAt *time.Time       `json:"last_processed_at"`

	// Relationships
	Transcripts []Transcript `json:"transcripts,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Digests     []Digest     `json:"digests,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// IsTerminal returns true if the video will not self-transition without a reprocess
func (v *Video) IsTerminal() bool {
	return v.Status == StatusCompleted || v.Status == StatusFailed
}

// IsProcessing returns true while a pipeline run owns the video
func (v *Video) IsProcessing() bool {
	return v.Status == StatusProcessing || v.Status == StatusSummarizing
}

// TableName specifies the table name for GORM
func (Video) TableName() string {
	return "videos"
}
