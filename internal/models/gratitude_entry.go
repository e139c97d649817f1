package models

import (
	"time"
)

// GratitudeEntry is a dated list of things the user is grateful for.
type GratitudeEntry struct {
	ID        string    `bson:"id" json:"id"`
	Items     []string  `bson:"items" json:"items"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
