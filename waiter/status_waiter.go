package waiter

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type StatusInfo interface {
	Status() string
}

// ProgressInfo is implemented by resources that report completion, such as
// snapshots
type ProgressInfo interface {
	Progress() string
}

type StatusResource interface {
	ID() string
}

type StatusFetcher func(context.Context, StatusResource) (StatusInfo, error)

// WaiterConfig describes a single wait. A zero PollTimeout waits until the
// desired status is reached, a failure status is seen or ctx is done.
type WaiterConfig struct {
	Resource        StatusResource
	DesiredStatus   string
	FailureStatuses []string
	PollInterval    time.Duration
	PollTimeout     time.Duration
	PollRetries     int
	Logger          zerolog.Logger
}

const defaultPollInterval = 5 * time.Second

// TimeoutError is returned when long polling times out
type TimeoutError struct {
	timeout  time.Duration
	resource StatusResource
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s polling on resource %s", e.timeout, e.resource.ID())
}

// FailedStatusError is returned when the resource reaches a state it cannot
// leave on its own
type FailedStatusError struct {
	ResourceID string
	Status     string
}

func (e FailedStatusError) Error() string {
	return fmt.Sprintf("resource %s entered failure status %s", e.ResourceID, e.Status)
}

// ID is a convenience StatusResource for plain identifiers
type ID string

func (id ID) ID() string {
	return string(id)
}

// WaitForStatus fetches the status immediately and then once per
// PollInterval until the desired status is observed
func WaitForStatus(ctx context.Context, status StatusFetcher, c WaiterConfig) (StatusInfo, error) {
	pollInterval := c.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	logger := c.Logger.With().Str("resource", c.Resource.ID()).Logger()
	logger.Info().Msgf("waiting on %s to be desired status %s", c.Resource.ID(), c.DesiredStatus)

	var timeout <-chan time.Time
	if c.PollTimeout > 0 {
		timer := time.NewTimer(c.PollTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	failures := 0
	lastStatus, lastProgress := "", ""
	for {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("waiting on %s: %w", c.Resource.ID(), ctx.Err())
		}

		info, err := status(ctx, c.Resource)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("waiting on %s: %w", c.Resource.ID(), ctx.Err())
			}

			failures++
			if failures > c.PollRetries {
				logger.Error().Err(err).Msg("describe encountered error")
				return nil, err
			}
			logger.Warn().Err(err).Msgf("describe encountered error, retry %d of %d", failures, c.PollRetries)
		} else {
			failures = 0

			current := info.Status()
			progress := ""
			if p, ok := info.(ProgressInfo); ok {
				progress = p.Progress()
			}

			if current != lastStatus || progress != lastProgress {
				event := logger.Info().Str("status", current)
				if progress != "" {
					event = event.Str("progress", progress)
				}
				event.Msg("status changed")
				lastStatus, lastProgress = current, progress
			} else {
				logger.Debug().Str("status", current).Msg("status unchanged")
			}

			if current == c.DesiredStatus {
				logger.Info().Msgf("%s matches desired status %s", c.Resource.ID(), c.DesiredStatus)
				return info, nil
			}

			for _, failure := range c.FailureStatuses {
				if current == failure {
					return info, FailedStatusError{ResourceID: c.Resource.ID(), Status: current}
				}
			}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting on %s: %w", c.Resource.ID(), ctx.Err())
		case <-timeout:
			logger.Error().Msg("timed out waiting for resource")
			return nil, TimeoutError{timeout: c.PollTimeout, resource: c.Resource}
		case <-ticker.C:
		}
	}
}
