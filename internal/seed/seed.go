package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/roadmap/internal/app/models"
	appRepos "github.com/yigit/roadmap/internal/app/repositories"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

type courseRepo interface {
	Create(ctx context.Context, course *appModels.Course) error
	GetByCode(ctx context.Context, dept, number string) (*appModels.Course, error)
	AddPrerequisite(ctx context.Context, edge appModels.PrereqEdge) error
}

type departmentRepo interface {
	Upsert(ctx context.Context, department *appModels.Department) error
}

type majorRepo interface {
	Upsert(ctx context.Context, major *appModels.Major) error
	AddRequirement(ctx context.Context, req appModels.MajorRequirement) error
}

// CreateDefaultData loads the Mathematics catalog, its prerequisite graph and
// major requirements. Existing rows are kept, so it is safe to run on every start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)
	return seedCatalog(ctx, repos.CourseRepository, repos.DepartmentRepository, repos.MajorRepository, lgr)
}

func seedCatalog(ctx context.Context, courses courseRepo, departments departmentRepo, majors majorRepo, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Mathematics catalog)...")
	var finalErr error // To collect potential errors without stopping the process

	if err := departments.Upsert(ctx, &appModels.Department{Name: mathDeptName, Code: mathDept}); err != nil {
		lgr.Error().Err(err).Msg("Error creating mathematics department")
		finalErr = errors.Join(finalErr, err)
	}

	ids := make(map[string]int64, len(mathCatalog))
	for _, entry := range mathCatalog {
		description := entry.description
		course := &appModels.Course{
			Dept:         mathDept,
			Number:       entry.number,
			Title:        entry.title,
			UnitsMin:     courseUnits,
			UnitsMax:     courseUnits,
			Difficulty:   entry.difficulty,
			Workload:     entry.workload,
			Description:  &description,
			TypicalTerms: entry.terms,
		}

		err := courses.Create(ctx, course)
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			existing, errGet := courses.GetByCode(ctx, mathDept, entry.number)
			if errGet != nil {
				finalErr = errors.Join(finalErr, fmt.Errorf("find %s %s: %w", mathDept, entry.number, errGet))
				continue
			}
			course.ID, err = existing.ID, nil
		}
		if err != nil {
			lgr.Error().Err(err).Str("course", course.Code()).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		ids[entry.number] = course.ID
	}

	edges := 0
	for _, pair := range mathPrereqs {
		courseID, okCourse := ids[pair[0]]
		prereqID, okPrereq := ids[pair[1]]
		if !okCourse || !okPrereq {
			continue
		}
		err := courses.AddPrerequisite(ctx, appModels.PrereqEdge{CourseID: courseID, PrereqCourseID: prereqID})
		if err != nil && !errors.Is(err, apperrors.ErrPrerequisiteExists) {
			lgr.Error().Err(err).Strs("pair", pair[:]).Msg("Error creating prerequisite")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		edges++
	}

	major := &appModels.Major{Name: mathMajorName, Code: mathMajorCode}
	if err := majors.Upsert(ctx, major); err != nil {
		lgr.Error().Err(err).Msg("Error creating mathematics major")
		return errors.Join(finalErr, err)
	}

	for _, group := range mathRequirements {
		for _, number := range group.numbers {
			courseID, ok := ids[number]
			if !ok {
				continue
			}
			err := majors.AddRequirement(ctx, appModels.MajorRequirement{
				MajorID:   major.ID,
				CourseID:  courseID,
				GroupName: group.name,
				Required:  group.required,
			})
			if err != nil {
				lgr.Error().Err(err).Str("group", group.name).Str("number", number).Msg("Error creating major requirement")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().
		Int("courses", len(ids)).
		Int("prerequisites", edges).
		Msg("Default catalog data ready")
	return finalErr
}
