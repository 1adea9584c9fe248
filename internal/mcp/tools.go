package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/eventlog"
)

// --- Tool definitions ---

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Retrieve logged workouts, newest data from the remote store when available with local fallback. Each entry groups the sets performed for one exercise on one date."),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group"), mcp.Enum("chest", "back", "legs", "shoulders", "arms", "core")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Per-exercise progress: entries for one exercise within a time range, sorted by date ascending. Use for strength trend analysis."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id (e.g. chest-push-ups, legs-back-squat)")),
	mcp.WithString("range", mcp.Description("How far back to look. Defaults to week."), mcp.Enum("week", "month", "quarter")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercises with optional muscle group and difficulty filters."),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group"), mcp.Enum("chest", "back", "legs", "shoulders", "arms", "core")),
	mcp.WithString("difficulty", mcp.Description("Filter by difficulty"), mcp.Enum("beginner", "intermediate", "advanced")),
)

var toolGetSyncEvents = mcp.NewTool("get_sync_events",
	mcp.WithDescription("Diagnostic trace of recent synchronization activity (at most 100 events, oldest dropped first)."),
	mcp.WithString("status", mcp.Description("Filter by event status"), mcp.Enum("success", "error", "info")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := h.ds.WorkoutHistory(ctx, req.GetString("muscle_group", ""))
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	entries, err := h.ds.ProgressData(ctx, exercise, req.GetString("range", "week"))
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx, req.GetString("muscle_group", ""), req.GetString("difficulty", ""))
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSyncEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events, err := h.ds.SyncEvents(ctx)
	if err != nil {
		h.log.Error("mcp get_sync_events", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if status := req.GetString("status", ""); status != "" {
		filtered := events[:0:0]
		for _, ev := range events {
			if ev.Status == eventlog.Status(status) {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}

	result, err := mcp.NewToolResultJSON(events)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
