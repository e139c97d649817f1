package cron

import (
	"context"
	"time"

	"github.com/bekzat-s/journal-backend/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartRolloverCronJob schedules the daily completed-flag rollover at UTC
// midnight, right when the calendar day key changes.
func StartRolloverCronJob(rollover *jobs.CompletionRollover) {
	c := cron.New(cron.WithLocation(time.UTC))

	c.AddFunc("0 0 * * *", func() {
		if err := rollover.Run(context.Background()); err != nil {
			logrus.WithError(err).Error("Completion rollover failed")
		}
	})

	c.Start()
}
