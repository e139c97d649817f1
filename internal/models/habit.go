package models

import (
	"time"
)

// Habit is a tracked recurring activity with a per-day completion record.
//
// The ID is the client-facing identifier and is stored under the "id" key;
// Mongo's own _id is never exposed. CompletionsByDate maps "YYYY-MM-DD" (UTC)
// to whether the habit was completed that day; an absent key means not
// completed, and a day once marked true is never unmarked by this service.
type Habit struct {
	ID                string          `bson:"id" json:"id"`
	Name              string          `bson:"name" json:"name"`
	Completed         bool            `bson:"completed" json:"completed"`
	Streak            int             `bson:"streak" json:"streak"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	CompletionsByDate map[string]bool `bson:"completionsByDate" json:"completionsByDate"`
	Notify            bool            `bson:"notify" json:"notify"`
	NotifyTime        *string         `bson:"notifyTime" json:"notifyTime"`
	NotificationID    *string         `bson:"notificationId" json:"notificationId"`
}
