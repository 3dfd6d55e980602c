package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/app/models"
)

func TestGetAllMajors(t *testing.T) {
	svc := NewMajorService(&fakeMajorStore{majors: []*models.Major{
		{ID: 1, Name: "Mathematics", Code: "MA30", RequirementCount: 30},
	}})

	majors, err := svc.GetAllMajors(context.Background())
	require.NoError(t, err)
	require.Len(t, majors, 1)
	assert.Equal(t, "MA30", majors[0].Code)
	assert.Equal(t, 30, majors[0].RequirementCount)
}

func TestGetAllDepartments(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentStore{})

	departments, err := svc.GetAllDepartments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}
