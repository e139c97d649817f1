package models

import (
	"time"
)

// JournalEntry is a free-form dated journal record.
type JournalEntry struct {
	ID        string    `bson:"id" json:"id"`
	Title     *string   `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Mood      *string   `bson:"mood" json:"mood"`
	Tags      []string  `bson:"tags" json:"tags"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
