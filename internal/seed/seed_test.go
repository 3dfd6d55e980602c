package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
	"github.com/yigit/roadmap/internal/planner"
)

type memCatalog struct {
	courses      map[string]*appModels.Course
	edges        map[appModels.PrereqEdge]bool
	requirements map[int64]appModels.MajorRequirement
	departments  int
	majors       int
	failEdges    bool
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		courses:      map[string]*appModels.Course{},
		edges:        map[appModels.PrereqEdge]bool{},
		requirements: map[int64]appModels.MajorRequirement{},
	}
}

func (m *memCatalog) Create(_ context.Context, course *appModels.Course) error {
	if _, ok := m.courses[course.Code()]; ok {
		return apperrors.ErrCourseAlreadyExists
	}
	course.ID = int64(len(m.courses) + 1)
	m.courses[course.Code()] = course
	return nil
}

func (m *memCatalog) GetByCode(_ context.Context, dept, number string) (*appModels.Course, error) {
	c, ok := m.courses[dept+" "+number]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (m *memCatalog) AddPrerequisite(_ context.Context, edge appModels.PrereqEdge) error {
	if m.failEdges {
		return errors.New("insert failed")
	}
	if m.edges[edge] {
		return apperrors.ErrPrerequisiteExists
	}
	m.edges[edge] = true
	return nil
}

func (m *memCatalog) Upsert(_ context.Context, _ *appModels.Department) error {
	m.departments++
	return nil
}

type memMajors struct{ *memCatalog }

func (m memMajors) Upsert(_ context.Context, major *appModels.Major) error {
	m.majors++
	major.ID = 1
	return nil
}

func (m memMajors) AddRequirement(_ context.Context, req appModels.MajorRequirement) error {
	m.requirements[req.CourseID] = req
	return nil
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	mem := newMemCatalog()

	require.NoError(t, seedCatalog(ctx, mem, mem, memMajors{mem}, zerolog.Nop()))
	assert.Len(t, mem.courses, 30)
	assert.Len(t, mem.edges, len(mathPrereqs))
	assert.Len(t, mem.requirements, 30)

	core := mem.requirements[mem.courses["MATH 109"].ID]
	assert.Equal(t, "Upper Division Core", core.GroupName)
	assert.True(t, core.Required)
	assert.False(t, mem.requirements[mem.courses["MATH 196"].ID].Required)

	// A second run finds everything in place.
	require.NoError(t, seedCatalog(ctx, mem, mem, memMajors{mem}, zerolog.Nop()))
	assert.Len(t, mem.courses, 30)
	assert.Equal(t, 2, mem.departments)
}

func TestSeedCatalogCollectsErrors(t *testing.T) {
	mem := newMemCatalog()
	mem.failEdges = true

	err := seedCatalog(context.Background(), mem, mem, memMajors{mem}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
	assert.Len(t, mem.requirements, 30)
}

func TestCatalogIsConsistent(t *testing.T) {
	numbers := map[string]bool{}
	var courses []planner.Course
	for i, c := range mathCatalog {
		require.False(t, numbers[c.number], "duplicate %s", c.number)
		numbers[c.number] = true
		terms := make([]string, 0, len(c.terms))
		for _, tc := range c.terms {
			terms = append(terms, string(tc))
		}
		courses = append(courses, planner.Course{
			ID: int64(i + 1), Dept: mathDept, Number: c.number,
			UnitsMin: courseUnits, UnitsMax: courseUnits,
			Difficulty: c.difficulty, Workload: c.workload, TypicalTerms: terms,
		})
	}

	index := map[string]int64{}
	for _, c := range courses {
		index[c.Number] = c.ID
	}
	var edges []planner.PrereqEdge
	for _, p := range mathPrereqs {
		require.True(t, numbers[p[0]] && numbers[p[1]], "unknown course in %v", p)
		edges = append(edges, planner.PrereqEdge{CourseID: index[p[0]], PrereqID: index[p[1]]})
	}

	in := planner.Input{TargetID: index["181C"], TargetTerm: "Spring", TargetYear: 2028, Courses: courses, Edges: edges}
	require.NoError(t, in.Validate())
	assert.Empty(t, planner.CycleMembers(planner.BuildGraph(courses, edges)))

	grouped := map[string]bool{}
	for _, g := range mathRequirements {
		for _, n := range g.numbers {
			grouped[n] = true
		}
	}
	assert.Equal(t, numbers, grouped)
}
