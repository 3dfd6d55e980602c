package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yigit/roadmap/internal/app/models/dto"
)

// RoadmapService builds the prerequisite roadmap of a course
type RoadmapService interface {
	GetRoadmap(ctx context.Context, courseID int64) (*dto.RoadmapResponse, error)
}

type roadmapServiceImpl struct {
	courseRepo CourseStore
}

// NewRoadmapService creates a new RoadmapService
func NewRoadmapService(courseRepo CourseStore) RoadmapService {
	return &roadmapServiceImpl{courseRepo: courseRepo}
}

// GetRoadmap returns the target at depth 0, every transitive prerequisite at its
// longest distance from the target, and the edges between them
func (s *roadmapServiceImpl) GetRoadmap(ctx context.Context, courseID int64) (*dto.RoadmapResponse, error) {
	target, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	closure, err := s.courseRepo.PrerequisiteClosure(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error loading prerequisite closure: %w", err)
	}

	depths := make(map[int64]int, len(closure))
	for _, e := range closure {
		if e.PrereqCourseID == courseID {
			continue
		}
		if e.Depth > depths[e.PrereqCourseID] {
			depths[e.PrereqCourseID] = e.Depth
		}
	}

	ids := closureCourseIDs(courseID, closure)[1:]
	courses, err := s.courseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading prerequisite courses: %w", err)
	}

	prereqs := make([]dto.CourseNode, 0, len(courses))
	for _, c := range courses {
		prereqs = append(prereqs, dto.NewCourseNode(c, depths[c.ID]))
	}
	sort.SliceStable(prereqs, func(i, j int) bool {
		if prereqs[i].Depth != prereqs[j].Depth {
			return prereqs[i].Depth < prereqs[j].Depth
		}
		if prereqs[i].Dept != prereqs[j].Dept {
			return prereqs[i].Dept < prereqs[j].Dept
		}
		return prereqs[i].Number < prereqs[j].Number
	})

	return &dto.RoadmapResponse{
		TargetCourse:  dto.NewCourseNode(target, 0),
		Prerequisites: prereqs,
		Edges:         dto.FromEdges(closureEdges(closure)),
	}, nil
}
