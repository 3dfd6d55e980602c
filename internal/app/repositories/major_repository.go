package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
	"github.com/yigit/roadmap/internal/pkg/dberrors"
)

// MajorRepository handles database operations for majors and their requirements
type MajorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMajorRepository creates a new major repository
func NewMajorRepository(db *pgxpool.Pool) *MajorRepository {
	return &MajorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll returns every major with its requirement count, ordered by name
func (r *MajorRepository) GetAll(ctx context.Context) ([]*models.Major, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.name", "m.code",
		"(SELECT COUNT(*) FROM major_requirements mr WHERE mr.major_id = m.id) AS requirement_count",
	).From("majors m").OrderBy("m.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving majors: %w", err)
	}
	defer rows.Close()

	var majors []*models.Major
	for rows.Next() {
		var m models.Major
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.RequirementCount); err != nil {
			return nil, fmt.Errorf("error scanning major: %w", err)
		}
		majors = append(majors, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating majors: %w", err)
	}
	return majors, nil
}

// Exists reports whether a major with the given ID exists
func (r *MajorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").From("majors").Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS(").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking major: %w", err)
	}
	return exists, nil
}

// GetByName retrieves a major by its unique name
func (r *MajorRepository) GetByName(ctx context.Context, name string) (*models.Major, error) {
	sql, args, err := r.sb.Select("id", "name", "code").From("majors").
		Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var m models.Major
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.Name, &m.Code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMajorNotFound
		}
		return nil, fmt.Errorf("error retrieving major: %w", err)
	}
	return &m, nil
}

// Upsert inserts a major or updates the code of the existing one with the same name
func (r *MajorRepository) Upsert(ctx context.Context, major *models.Major) error {
	sql, args, err := r.sb.Insert("majors").
		Columns("name", "code").
		Values(major.Name, major.Code).
		Suffix("ON CONFLICT ON CONSTRAINT majors_name_key DO UPDATE SET code = EXCLUDED.code RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&major.ID); err != nil {
		return fmt.Errorf("error saving major: %w", err)
	}
	return nil
}

// AddRequirement links a course to a major, updating the group if already linked
func (r *MajorRepository) AddRequirement(ctx context.Context, req models.MajorRequirement) error {
	sql, args, err := r.sb.Insert("major_requirements").
		Columns("major_id", "course_id", "group_name", "required").
		Values(req.MajorID, req.CourseID, req.GroupName, req.Required).
		Suffix("ON CONFLICT (major_id, course_id) DO UPDATE SET group_name = EXCLUDED.group_name, required = EXCLUDED.required").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error adding requirement: %w", err)
	}
	return nil
}
