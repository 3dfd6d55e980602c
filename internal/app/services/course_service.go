package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
	"github.com/yigit/roadmap/internal/pkg/helpers"
	"github.com/yigit/roadmap/internal/pkg/validation"
	"github.com/yigit/roadmap/internal/planner"
)

// Defaults for courses created without scores
const (
	DefaultDifficulty = 5
	DefaultWorkload   = 5
)

// CourseService defines the interface for catalog operations
type CourseService interface {
	SearchCourses(ctx context.Context, query dto.CourseSearchQuery, page, size int) (*dto.CourseListResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	AddPrerequisite(ctx context.Context, courseID int64, req *dto.AddPrerequisiteRequest) error
}

type courseServiceImpl struct {
	courseRepo CourseStore
	majorRepo  MajorStore
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, majorRepo MajorStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		majorRepo:  majorRepo,
		logger:     logger,
	}
}

// SearchCourses lists a major's courses when MajorID is set, otherwise matches
// the query against course codes and titles. Neither yields an empty page.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, query dto.CourseSearchQuery, page, size int) (*dto.CourseListResponse, error) {
	if query.MajorID > 0 {
		return s.listByMajor(ctx, query.MajorID, page, size)
	}

	if strings.TrimSpace(query.Query) == "" {
		return &dto.CourseListResponse{
			Courses:    []dto.CourseResponse{},
			Pagination: helpers.NewPaginationInfo(0, page, size),
		}, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	courses, total, err := s.courseRepo.Search(ctx, query.Query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	return &dto.CourseListResponse{
		Courses:    dto.FromCourses(courses),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

func (s *courseServiceImpl) listByMajor(ctx context.Context, majorID int64, page, size int) (*dto.CourseListResponse, error) {
	exists, err := s.majorRepo.Exists(ctx, majorID)
	if err != nil {
		return nil, fmt.Errorf("error checking major: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrMajorNotFound
	}

	courses, err := s.courseRepo.ListByMajor(ctx, majorID)
	if err != nil {
		return nil, fmt.Errorf("error listing major courses: %w", err)
	}

	total := int64(len(courses))
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	switch {
	case offset >= uint64(len(courses)):
		courses = nil
	case offset+limit < uint64(len(courses)):
		courses = courses[offset : offset+limit]
	default:
		courses = courses[offset:]
	}

	return &dto.CourseListResponse{
		Courses:    dto.FromCourses(courses),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetCourseByID retrieves a course with its typical terms
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromCourse(course)
	return &resp, nil
}

// CreateCourse adds a course to the catalog
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &models.Course{
		Dept:        validation.NormalizeCode(req.Dept),
		Number:      validation.NormalizeCode(req.Number),
		Title:       strings.TrimSpace(req.Title),
		UnitsMin:    req.UnitsMin,
		UnitsMax:    req.UnitsMax,
		Difficulty:  req.Difficulty,
		Workload:    req.Workload,
		Description: req.Description,
	}
	if course.Difficulty == 0 {
		course.Difficulty = DefaultDifficulty
	}
	if course.Workload == 0 {
		course.Workload = DefaultWorkload
	}

	seen := make(map[models.TermCode]bool, len(req.TypicalTerms))
	for _, t := range req.TypicalTerms {
		code, ok := models.ParseTermCode(t)
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown term %q", t))
		}
		if !seen[code] {
			seen[code] = true
			course.TypicalTerms = append(course.TypicalTerms, code)
		}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Str("code", course.Code()).
		Msg("Course created")

	resp := dto.FromCourse(course)
	return &resp, nil
}

// AddPrerequisite adds an edge after checking that both courses exist and that
// the edge keeps the prerequisite graph acyclic
func (s *courseServiceImpl) AddPrerequisite(ctx context.Context, courseID int64, req *dto.AddPrerequisiteRequest) error {
	edge := models.PrereqEdge{CourseID: courseID, PrereqCourseID: req.PrereqCourseID}
	if edge.CourseID == edge.PrereqCourseID {
		return apperrors.ErrPrerequisiteCycle
	}

	courses, err := s.courseRepo.GetByIDs(ctx, []int64{edge.CourseID, edge.PrereqCourseID})
	if err != nil {
		return fmt.Errorf("error loading courses: %w", err)
	}
	if len(courses) != 2 {
		return apperrors.ErrCourseNotFound
	}

	closure, err := s.courseRepo.PrerequisiteClosure(ctx, edge.PrereqCourseID)
	if err != nil {
		return fmt.Errorf("error loading prerequisite closure: %w", err)
	}

	existing := make([]planner.PrereqEdge, 0, len(closure))
	for _, e := range closureEdges(closure) {
		existing = append(existing, e.ToPlanner())
	}
	if planner.WouldCreateCycle(existing, edge.ToPlanner()) {
		return apperrors.ErrPrerequisiteCycle
	}

	if err := s.courseRepo.AddPrerequisite(ctx, edge); err != nil {
		return err
	}

	s.logger.Info().
		Int64("courseId", edge.CourseID).
		Int64("prereqCourseId", edge.PrereqCourseID).
		Msg("Prerequisite added")
	return nil
}
