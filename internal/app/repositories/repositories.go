package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	DepartmentRepository *DepartmentRepository
	MajorRepository      *MajorRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		MajorRepository:      NewMajorRepository(db),
	}
}
