package mcp

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/synclog"
)

// DataSource abstracts the data layer for MCP tools. Both LocalSource
// (in-process synchronizer) and HTTPClient (remote via REST API) satisfy
// this interface.
type DataSource interface {
	WorkoutHistory(ctx context.Context, muscleGroup string) ([]models.WorkoutLogEntry, error)
	ProgressData(ctx context.Context, exerciseID, timeRange string) ([]models.WorkoutLogEntry, error)
	SyncEvents(ctx context.Context) ([]eventlog.Event, error)
	Exercises(ctx context.Context, muscleGroup, difficulty string) ([]catalog.Exercise, error)
}

// LocalSource serves MCP queries from the in-process synchronizer.
type LocalSource struct {
	sync   *synclog.Synchronizer
	events *eventlog.Log
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource creates a LocalSource over the given synchronizer and
// event log.
func NewLocalSource(sync *synclog.Synchronizer, events *eventlog.Log) *LocalSource {
	return &LocalSource{sync: sync, events: events}
}

func (l *LocalSource) WorkoutHistory(ctx context.Context, muscleGroup string) ([]models.WorkoutLogEntry, error) {
	return l.sync.GetWorkoutHistory(ctx, muscleGroup), nil
}

func (l *LocalSource) ProgressData(ctx context.Context, exerciseID, timeRange string) ([]models.WorkoutLogEntry, error) {
	rng := synclog.RangeWeek
	if timeRange != "" {
		var ok bool
		if rng, ok = synclog.ParseTimeRange(timeRange); !ok {
			return nil, fmt.Errorf("invalid range %q", timeRange)
		}
	}
	return l.sync.GetProgressData(ctx, exerciseID, rng), nil
}

func (l *LocalSource) SyncEvents(ctx context.Context) ([]eventlog.Event, error) {
	return l.events.List(), nil
}

func (l *LocalSource) Exercises(ctx context.Context, muscleGroup, difficulty string) ([]catalog.Exercise, error) {
	return catalog.Filter(muscleGroup, difficulty), nil
}
