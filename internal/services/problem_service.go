package services

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

// ProblemService tracks user-reported problems
type ProblemService struct {
	problems repositories.ProblemStore
	alloc    db.SequenceAllocator
	now      func() time.Time
}

func NewProblemService(problems repositories.ProblemStore, alloc db.SequenceAllocator, now func() time.Time) *ProblemService {
	if now == nil {
		now = time.Now
	}
	return &ProblemService{problems: problems, alloc: alloc, now: now}
}

func (s *ProblemService) Report(ctx context.Context, problem *entities.Problem) error {
	if problem.Title == "" || problem.ReporterID == "" {
		return fmt.Errorf("title and reporter are required: %w", apperrors.ErrInvalidArgument)
	}

	id, err := s.alloc.NextID(ctx, constants.CollProblems)
	if err != nil {
		return err
	}

	problem.ID = id
	problem.CreationDate = s.now()
	problem.IsResolved = false
	return s.problems.Insert(ctx, problem)
}

func (s *ProblemService) Get(ctx context.Context, id int64) (*entities.Problem, error) {
	problem, err := s.problems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("problem %d: %w", id, apperrors.ErrNotFound)
	}
	return problem, nil
}

func (s *ProblemService) ListAll(ctx context.Context) ([]entities.Problem, error) {
	return s.problems.ListAll(ctx)
}

func (s *ProblemService) ListUnresolved(ctx context.Context) ([]entities.Problem, error) {
	return s.problems.ListUnresolved(ctx)
}

// MarkResolved is idempotent; resolving a resolved problem is a no-op
func (s *ProblemService) MarkResolved(ctx context.Context, id int64) error {
	problem, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if problem.IsResolved {
		return nil
	}
	problem.IsResolved = true
	return s.problems.Replace(ctx, problem)
}
