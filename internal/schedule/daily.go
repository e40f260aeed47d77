// Package schedule triggers the daily verse fan-out at a fixed local time.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is the work invoked on every tick.
type Job func(ctx context.Context)

type Daily struct {
	spec string
	loc  *time.Location
	job  Job

	c *cron.Cron

	log *slog.Logger
}

// NewDaily schedules job every day at the given "HH:MM" local time.
func NewDaily(at, timezone string, job Job, log *slog.Logger) (*Daily, error) {
	spec, err := cronSpec(at)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	return &Daily{
		spec: spec,
		loc:  loc,
		job:  job,

		log: log.With("component", "schedule"),
	}, nil
}

// Start runs the cron loop until ctx is cancelled. It blocks.
func (d *Daily) Start(ctx context.Context) error {
	d.c = cron.New(cron.WithLocation(d.loc))
	if _, err := d.c.AddFunc(d.spec, func() {
		d.log.Info("daily trigger fired")
		d.job(ctx)
	}); err != nil {
		return fmt.Errorf("register cron job: %w", err)
	}

	d.log.Info("starting daily schedule", "spec", d.spec, "tz", d.loc.String())
	d.c.Start()

	<-ctx.Done()
	d.log.Info("Stopping daily schedule")
	<-d.c.Stop().Done()

	return nil
}

// cronSpec converts an "HH:MM" wall-clock time into a 5-field cron spec.
func cronSpec(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 { //nolint:mnd // HH:MM
		return "", fmt.Errorf("invalid delivery time %q: want HH:MM", at)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid delivery hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid delivery minute %q", parts[1])
	}

	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
