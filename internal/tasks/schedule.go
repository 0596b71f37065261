package tasks

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidateSchedule checks that spec is a standard five field cron
// expression or a descriptor such as "@every 5m".
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// NextRun returns the first activation of spec strictly after from.
func NextRun(spec string, from time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return schedule.Next(from), nil
}
