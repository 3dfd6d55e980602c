package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

func newCourseService(f *fakeCourseStore, majors ...*models.Major) CourseService {
	return NewCourseService(f, &fakeMajorStore{majors: majors}, zerolog.Nop())
}

func TestSearchCourses(t *testing.T) {
	ctx := context.Background()
	f := mathChain()
	svc := newCourseService(f)

	resp, err := svc.SearchCourses(ctx, dto.CourseSearchQuery{Query: "math 20"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Courses, 3)
	assert.Equal(t, "MATH 20A", resp.Courses[0].Code)
	assert.Equal(t, int64(3), resp.Pagination.TotalItems)

	resp, err = svc.SearchCourses(ctx, dto.CourseSearchQuery{Query: "  "}, 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, resp.Courses)
	assert.Empty(t, resp.Courses)

	f.searchErr = errors.New("boom")
	_, err = svc.SearchCourses(ctx, dto.CourseSearchQuery{Query: "math"}, 1, 20)
	assert.ErrorIs(t, err, f.searchErr)
}

func TestSearchCoursesByMajor(t *testing.T) {
	ctx := context.Background()
	f := mathChain()
	f.majors[7] = []int64{5, 1, 2}
	svc := newCourseService(f, &models.Major{ID: 7, Name: "Mathematics"})

	resp, err := svc.SearchCourses(ctx, dto.CourseSearchQuery{MajorID: 7}, 1, 2)
	require.NoError(t, err)
	require.Len(t, resp.Courses, 2)
	assert.Equal(t, int64(3), resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp, err = svc.SearchCourses(ctx, dto.CourseSearchQuery{MajorID: 7}, 2, 2)
	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "MATH 109", resp.Courses[0].Code)

	resp, err = svc.SearchCourses(ctx, dto.CourseSearchQuery{MajorID: 7}, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, resp.Courses)

	_, err = svc.SearchCourses(ctx, dto.CourseSearchQuery{MajorID: 8}, 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrMajorNotFound)
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	f := mathChain()
	svc := newCourseService(f)

	resp, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
		Dept: "math", Number: "140a", Title: " Foundations of Real Analysis ",
		UnitsMin: 4, UnitsMax: 4, TypicalTerms: []string{"Fall", "FA", "sp"},
	})
	require.NoError(t, err)
	assert.Equal(t, "MATH 140A", resp.Code)
	assert.Equal(t, "Foundations of Real Analysis", resp.Title)
	assert.Equal(t, DefaultDifficulty, resp.Difficulty)
	assert.Equal(t, DefaultWorkload, resp.Workload)
	assert.Equal(t, []string{"FA", "SP"}, resp.TypicalTerms)

	_, err = svc.CreateCourse(ctx, &dto.CreateCourseRequest{Dept: "MATH", Number: "20A", Title: "Dup", UnitsMin: 4, UnitsMax: 4})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)

	_, err = svc.CreateCourse(ctx, &dto.CreateCourseRequest{Dept: "MATH", Number: "1", Title: "Bad", UnitsMin: 4, UnitsMax: 4, TypicalTerms: []string{"Summer"}})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAddPrerequisite(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		course  int64
		prereq  int64
		wantErr error
	}{
		{name: "new edge", course: 5, prereq: 1},
		{name: "self edge", course: 3, prereq: 3, wantErr: apperrors.ErrPrerequisiteCycle},
		{name: "direct back edge", course: 2, prereq: 3, wantErr: apperrors.ErrPrerequisiteCycle},
		{name: "transitive back edge", course: 1, prereq: 5, wantErr: apperrors.ErrPrerequisiteCycle},
		{name: "existing edge", course: 2, prereq: 1, wantErr: apperrors.ErrPrerequisiteExists},
		{name: "unknown course", course: 99, prereq: 1, wantErr: apperrors.ErrCourseNotFound},
		{name: "unknown prerequisite", course: 1, prereq: 99, wantErr: apperrors.ErrCourseNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mathChain()
			svc := newCourseService(f)

			err := svc.AddPrerequisite(ctx, tt.course, &dto.AddPrerequisiteRequest{PrereqCourseID: tt.prereq})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.added)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []models.PrereqEdge{{CourseID: tt.course, PrereqCourseID: tt.prereq}}, f.added)
		})
	}
}

func TestGetCourseByID(t *testing.T) {
	svc := newCourseService(mathChain())

	resp, err := svc.GetCourseByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"FA", "SP"}, resp.TypicalTerms)

	_, err = svc.GetCourseByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
