package models

import (
	"time"
)

// HighlightEntry records the highlight of a day.
type HighlightEntry struct {
	ID        string    `bson:"id" json:"id"`
	Highlight string    `bson:"highlight" json:"highlight"`
	Reason    *string   `bson:"reason" json:"reason"`
	Mood      *string   `bson:"mood" json:"mood"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
