package services

import (
	"context"
	"errors"
	"testing"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/models/entities"
)

func TestProblemReportAndResolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reporter := env.registerUser(t, "reporter@example.com")

	problem := &entities.Problem{
		Title:       "Broken listing",
		Description: "The listing page shows a stale advertisement",
		ReporterID:  reporter.ID,
	}
	if err := env.problems.Report(ctx, problem); err != nil {
		t.Fatal(err)
	}
	if problem.IsResolved {
		t.Error("new problem reported as resolved")
	}

	unresolved, _ := env.problems.ListUnresolved(ctx)
	if len(unresolved) != 1 {
		t.Fatalf("unresolved = %d, want 1", len(unresolved))
	}

	if err := env.problems.MarkResolved(ctx, problem.ID); err != nil {
		t.Fatal(err)
	}
	// Resolving twice is a no-op
	if err := env.problems.MarkResolved(ctx, problem.ID); err != nil {
		t.Errorf("second resolve failed: %v", err)
	}

	unresolved, _ = env.problems.ListUnresolved(ctx)
	if len(unresolved) != 0 {
		t.Errorf("unresolved after resolve = %d, want 0", len(unresolved))
	}
	all, _ := env.problems.ListAll(ctx)
	if len(all) != 1 {
		t.Errorf("all = %d, want 1", len(all))
	}
}

func TestProblemReportRequiresTitleAndReporter(t *testing.T) {
	env := newTestEnv(t)
	err := env.problems.Report(context.Background(), &entities.Problem{Description: "no title"})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestProblemGetMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.problems.Get(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
