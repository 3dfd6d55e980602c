package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
	"github.com/yigit/roadmap/internal/planner"
)

// PlanService generates term-by-term plans toward a target course
type PlanService interface {
	GeneratePlan(ctx context.Context, req *dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error)
}

type planServiceImpl struct {
	courseRepo CourseStore
	planner    *planner.Planner
	logger     zerolog.Logger
}

// NewPlanService creates a new PlanService
func NewPlanService(courseRepo CourseStore, p *planner.Planner, logger zerolog.Logger) PlanService {
	return &planServiceImpl{
		courseRepo: courseRepo,
		planner:    p,
		logger:     logger,
	}
}

// GeneratePlan loads the target's prerequisite closure, drops taken courses
// along with prerequisites only they needed, and runs the planner. Planning failures come back as blockers, not errors.
func (s *planServiceImpl) GeneratePlan(ctx context.Context, req *dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error) {
	if _, ok := planner.ParseTerm(req.TargetTerm); !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown term %q", req.TargetTerm))
	}

	taken := make(map[int64]bool, len(req.TakenCourseIDs))
	for _, id := range req.TakenCourseIDs {
		taken[id] = true
	}

	if taken[req.TargetCourseID] {
		target, err := s.courseRepo.GetByID(ctx, req.TargetCourseID)
		if err != nil {
			return nil, err
		}
		resp := dto.NewGeneratePlanResponse(uuid.NewString(), alreadyTaken(target))
		return &resp, nil
	}

	closure, err := s.courseRepo.PrerequisiteClosure(ctx, req.TargetCourseID)
	if err != nil {
		return nil, fmt.Errorf("error loading prerequisite closure: %w", err)
	}

	ids := pendingCourseIDs(req.TargetCourseID, closure, taken)
	pending := make(map[int64]bool, len(ids))
	for _, id := range ids {
		pending[id] = true
	}

	var (
		courses   []*models.Course
		offerings map[int64][]models.TermCode
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.courseRepo.GetByIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		offerings, err = s.courseRepo.Offerings(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading plan courses: %w", err)
	}

	in := planner.Input{
		TargetID:   req.TargetCourseID,
		TargetTerm: req.TargetTerm,
		TargetYear: req.TargetYear,
		Limits:     req.Limits(),
	}

	found := false
	for _, c := range courses {
		if c.ID == req.TargetCourseID {
			found = true
		}
		c.TypicalTerms = offerings[c.ID]
		in.Courses = append(in.Courses, c.ToPlanner())
	}
	if !found {
		return nil, apperrors.ErrCourseNotFound
	}

	for _, e := range closureEdges(closure) {
		if pending[e.CourseID] && pending[e.PrereqCourseID] {
			in.Edges = append(in.Edges, e.ToPlanner())
		}
	}

	res := s.planner.Plan(in)
	planID := uuid.NewString()

	s.logger.Info().
		Str("planId", planID).
		Int64("targetCourseId", req.TargetCourseID).
		Str("targetTerm", req.TargetTerm).
		Int("targetYear", req.TargetYear).
		Int("courses", len(in.Courses)).
		Int("quarters", len(res.Plan)).
		Int("unscheduled", len(res.Unscheduled)).
		Int("blockers", len(res.Explanation.Blockers)).
		Msg("Plan generated")

	resp := dto.NewGeneratePlanResponse(planID, res)
	return &resp, nil
}

func alreadyTaken(target *models.Course) planner.Result {
	return planner.Result{
		Plan:        []planner.QuarterPlan{},
		Unscheduled: []planner.Course{},
		Explanation: planner.Explanation{
			Blockers:    []string{},
			Warnings:    []string{},
			Suggestions: []string{fmt.Sprintf("%s is already completed, nothing to plan", target.Code())},
		},
	}
}
