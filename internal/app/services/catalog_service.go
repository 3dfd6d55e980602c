package services

import (
	"context"
	"fmt"

	"github.com/yigit/roadmap/internal/app/models/dto"
)

// MajorService lists degree programs
type MajorService interface {
	GetAllMajors(ctx context.Context) ([]dto.MajorResponse, error)
}

type majorServiceImpl struct {
	majorRepo MajorStore
}

// NewMajorService creates a new MajorService
func NewMajorService(majorRepo MajorStore) MajorService {
	return &majorServiceImpl{majorRepo: majorRepo}
}

// GetAllMajors returns majors with their requirement counts
func (s *majorServiceImpl) GetAllMajors(ctx context.Context) ([]dto.MajorResponse, error) {
	majors, err := s.majorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting majors: %w", err)
	}
	return dto.FromMajors(majors), nil
}

// DepartmentService lists departments
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
}

type departmentServiceImpl struct {
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

// GetAllDepartments returns departments ordered by code
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting departments: %w", err)
	}
	return dto.FromDepartments(departments), nil
}
