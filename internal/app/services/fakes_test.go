package services

import (
	"context"
	"sort"
	"strings"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

// fakeCourseStore keeps a catalog in memory and walks closures the way the
// recursive query does.
type fakeCourseStore struct {
	courses   map[int64]*models.Course
	edges     []models.PrereqEdge
	majors    map[int64][]int64
	nextID    int64
	added     []models.PrereqEdge
	searchErr error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		courses: map[int64]*models.Course{},
		majors:  map[int64][]int64{},
		nextID:  100,
	}
}

func (f *fakeCourseStore) add(id int64, dept, number string, terms ...models.TermCode) *models.Course {
	c := &models.Course{
		ID: id, Dept: dept, Number: number, Title: dept + " " + number,
		UnitsMin: 4, UnitsMax: 4, Difficulty: 5, Workload: 5, TypicalTerms: terms,
	}
	f.courses[id] = c
	return c
}

func (f *fakeCourseStore) edge(course, prereq int64) {
	f.edges = append(f.edges, models.PrereqEdge{CourseID: course, PrereqCourseID: prereq})
}

func (f *fakeCourseStore) sorted(ids []int64) []*models.Course {
	out := []*models.Course{}
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCourseStore) Search(_ context.Context, query string, offset, limit uint64) ([]*models.Course, int64, error) {
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	var ids []int64
	for id, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Code()), strings.ToLower(query)) {
			ids = append(ids, id)
		}
	}
	all := f.sorted(ids)
	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	end := offset + limit
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	return all[offset:end], total, nil
}

func (f *fakeCourseStore) ListByMajor(_ context.Context, majorID int64) ([]*models.Course, error) {
	return f.sorted(f.majors[majorID]), nil
}

func (f *fakeCourseStore) ListAll(_ context.Context) ([]*models.Course, error) {
	ids := make([]int64, 0, len(f.courses))
	for id := range f.courses {
		ids = append(ids, id)
	}
	return f.sorted(ids), nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseStore) GetByIDs(_ context.Context, ids []int64) ([]*models.Course, error) {
	return f.sorted(ids), nil
}

func (f *fakeCourseStore) Offerings(_ context.Context, ids []int64) (map[int64][]models.TermCode, error) {
	out := map[int64][]models.TermCode{}
	for _, id := range ids {
		if c, ok := f.courses[id]; ok && len(c.TypicalTerms) > 0 {
			out[id] = c.TypicalTerms
		}
	}
	return out, nil
}

func (f *fakeCourseStore) PrerequisiteClosure(_ context.Context, targetID int64) ([]models.ClosureEdge, error) {
	depth := map[models.PrereqEdge]int{}
	var walk func(id int64, d int, path map[int64]bool)
	walk = func(id int64, d int, path map[int64]bool) {
		for _, e := range f.edges {
			if e.CourseID != id || path[e.PrereqCourseID] {
				continue
			}
			if d > depth[e] {
				depth[e] = d
			}
			path[e.PrereqCourseID] = true
			walk(e.PrereqCourseID, d+1, path)
			delete(path, e.PrereqCourseID)
		}
	}
	walk(targetID, 1, map[int64]bool{targetID: true})

	out := make([]models.ClosureEdge, 0, len(depth))
	for e, d := range depth {
		out = append(out, models.ClosureEdge{CourseID: e.CourseID, PrereqCourseID: e.PrereqCourseID, Depth: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		if out[i].CourseID != out[j].CourseID {
			return out[i].CourseID < out[j].CourseID
		}
		return out[i].PrereqCourseID < out[j].PrereqCourseID
	})
	return out, nil
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range f.courses {
		if c.Dept == course.Dept && c.Number == course.Number {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseStore) AddPrerequisite(_ context.Context, edge models.PrereqEdge) error {
	for _, e := range f.edges {
		if e == edge {
			return apperrors.ErrPrerequisiteExists
		}
	}
	f.edges = append(f.edges, edge)
	f.added = append(f.added, edge)
	return nil
}

type fakeMajorStore struct {
	majors []*models.Major
}

func (f *fakeMajorStore) GetAll(_ context.Context) ([]*models.Major, error) {
	return f.majors, nil
}

func (f *fakeMajorStore) Exists(_ context.Context, id int64) (bool, error) {
	for _, m := range f.majors {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartmentStore struct {
	departments []*models.Department
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	return f.departments, nil
}

// mathChain builds 20A -> 20B -> 20C -> 109, with 18 also required by 109.
func mathChain() *fakeCourseStore {
	f := newFakeCourseStore()
	f.add(1, "MATH", "20A")
	f.add(2, "MATH", "20B")
	f.add(3, "MATH", "20C")
	f.add(4, "MATH", "18")
	f.add(5, "MATH", "109", models.TermFall, models.TermSpring)
	f.edge(2, 1)
	f.edge(3, 2)
	f.edge(5, 3)
	f.edge(5, 4)
	return f
}
