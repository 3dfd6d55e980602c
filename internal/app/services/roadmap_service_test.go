package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

func TestGetRoadmap(t *testing.T) {
	f := mathChain()
	// 20A is also a direct prerequisite of 109; its depth stays the longest path.
	f.edge(5, 1)
	svc := NewRoadmapService(f)

	resp, err := svc.GetRoadmap(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "109", resp.TargetCourse.Number)
	assert.Equal(t, 0, resp.TargetCourse.Depth)

	got := map[string]int{}
	for _, n := range resp.Prerequisites {
		got[n.Dept+" "+n.Number] = n.Depth
	}
	want := map[string]int{"MATH 20C": 1, "MATH 18": 1, "MATH 20B": 2, "MATH 20A": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "MATH", resp.Prerequisites[0].Dept)
	assert.Equal(t, 3, resp.Prerequisites[len(resp.Prerequisites)-1].Depth)
	assert.Len(t, resp.Edges, 5)
	assert.Contains(t, resp.Edges, dto.PrereqEdgeResponse{CourseID: 5, PrereqCourseID: 1})
}

func TestGetRoadmapWithoutPrerequisites(t *testing.T) {
	svc := NewRoadmapService(mathChain())

	resp, err := svc.GetRoadmap(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Prerequisites)
	assert.Empty(t, resp.Edges)
	assert.NotNil(t, resp.Prerequisites)
}

func TestGetRoadmapUnknownCourse(t *testing.T) {
	_, err := NewRoadmapService(mathChain()).GetRoadmap(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
