package services

import (
	"context"

	"github.com/yigit/roadmap/internal/app/models"
)

// CourseStore is the course persistence the services depend on
type CourseStore interface {
	Search(ctx context.Context, query string, offset, limit uint64) ([]*models.Course, int64, error)
	ListByMajor(ctx context.Context, majorID int64) ([]*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	Offerings(ctx context.Context, ids []int64) (map[int64][]models.TermCode, error)
	PrerequisiteClosure(ctx context.Context, targetID int64) ([]models.ClosureEdge, error)
	Create(ctx context.Context, course *models.Course) error
	AddPrerequisite(ctx context.Context, edge models.PrereqEdge) error
}

// MajorStore is the major persistence the services depend on
type MajorStore interface {
	GetAll(ctx context.Context) ([]*models.Major, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// DepartmentStore is the department persistence the services depend on
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// closureEdges strips depths from a closure walk.
func closureEdges(closure []models.ClosureEdge) []models.PrereqEdge {
	edges := make([]models.PrereqEdge, 0, len(closure))
	for _, e := range closure {
		edges = append(edges, models.PrereqEdge{CourseID: e.CourseID, PrereqCourseID: e.PrereqCourseID})
	}
	return edges
}

// closureCourseIDs lists the target followed by every prerequisite in the
// closure, without duplicates.
func closureCourseIDs(targetID int64, closure []models.ClosureEdge) []int64 {
	seen := map[int64]bool{targetID: true}
	ids := []int64{targetID}
	for _, e := range closure {
		for _, id := range []int64{e.CourseID, e.PrereqCourseID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// pendingCourseIDs walks the closure backward from the target and stops at
// taken courses, so prerequisites needed only by completed courses drop out.
// The target comes first; the rest follow closure order.
func pendingCourseIDs(targetID int64, closure []models.ClosureEdge, taken map[int64]bool) []int64 {
	prereqs := make(map[int64][]int64)
	for _, e := range closure {
		prereqs[e.CourseID] = append(prereqs[e.CourseID], e.PrereqCourseID)
	}

	reached := map[int64]bool{targetID: true}
	queue := []int64{targetID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, p := range prereqs[id] {
			if taken[p] || reached[p] {
				continue
			}
			reached[p] = true
			queue = append(queue, p)
		}
	}

	ids := make([]int64, 0, len(reached))
	for _, id := range closureCourseIDs(targetID, closure) {
		if reached[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
