package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/db"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
	"github.com/yigit/roadmap/internal/pkg/dberrors"
)

const courseDeptNumberKey = "courses_dept_number_key"

// CourseRepository handles database operations for courses, their offerings and
// the prerequisite graph
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.dept", "c.number", "c.title", "c.units_min", "c.units_max",
		"c.difficulty", "c.workload", "c.description",
		"(SELECT COUNT(*) FROM course_prereq_edges e WHERE e.course_id = c.id) AS prereq_count",
		"(SELECT COUNT(*) FROM course_prereq_edges e WHERE e.prereq_course_id = c.id) AS dependent_count",
	).From("courses c")
}

func scanCourse(row pgx.Row, extra ...any) (*models.Course, error) {
	var c models.Course
	dest := []any{
		&c.ID, &c.Dept, &c.Number, &c.Title, &c.UnitsMin, &c.UnitsMax,
		&c.Difficulty, &c.Workload, &c.Description, &c.PrereqCount, &c.DependentCount,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

// searchCondition matches "DEPT NUM" style queries against dept and number, or
// the whole query against the title.
func searchCondition(query string) squirrel.Sqlizer {
	query = strings.TrimSpace(query)
	terms := strings.Fields(query)

	code := squirrel.And{squirrel.ILike{"c.dept": "%" + strings.ToUpper(terms[0]) + "%"}}
	if len(terms) > 1 {
		code = append(code, squirrel.ILike{"c.number": "%" + terms[1] + "%"})
	}
	return squirrel.Or{code, squirrel.ILike{"c.title": "%" + query + "%"}}
}

// Search finds courses by code or title, ordered by dept and number.
func (r *CourseRepository) Search(ctx context.Context, query string, offset, limit uint64) ([]*models.Course, int64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, nil
	}

	q := r.selectCourses().
		Column("COUNT(*) OVER() AS total").
		Where(searchCondition(query)).
		OrderBy("c.dept ASC", "c.number ASC").
		Limit(limit).
		Offset(offset)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var (
		courses []*models.Course
		total   int64
	)
	for rows.Next() {
		c, err := scanCourse(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, total, nil
}

// ListByMajor returns every course a major lists as a requirement.
func (r *CourseRepository) ListByMajor(ctx context.Context, majorID int64) ([]*models.Course, error) {
	q := r.selectCourses().
		Join("major_requirements mr ON mr.course_id = c.id").
		Where(squirrel.Eq{"mr.major_id": majorID}).
		OrderBy("c.dept ASC", "c.number ASC")
	return r.queryCourses(ctx, q)
}

// ListAll returns the whole catalog ordered by dept and number.
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, r.selectCourses().OrderBy("c.dept ASC", "c.number ASC"))
}

// GetByID retrieves a course with its typical terms.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	offerings, err := r.Offerings(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	course.TypicalTerms = offerings[id]
	return course, nil
}

// GetByCode retrieves a course by department and number.
func (r *CourseRepository) GetByCode(ctx context.Context, dept, number string) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.dept": dept, "c.number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetByIDs loads courses in ID order; unknown IDs are silently absent.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	return r.queryCourses(ctx, r.selectCourses().Where(squirrel.Eq{"c.id": ids}).OrderBy("c.id ASC"))
}

// Offerings returns the typical term codes of each requested course in FA, WI, SP order.
func (r *CourseRepository) Offerings(ctx context.Context, ids []int64) (map[int64][]models.TermCode, error) {
	out := make(map[int64][]models.TermCode, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := r.sb.Select("course_id", "term_code").
		From("course_offerings").
		Where(squirrel.Eq{"course_id": ids}).
		OrderBy("course_id", "CASE term_code WHEN 'FA' THEN 0 WHEN 'WI' THEN 1 ELSE 2 END").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading offerings: %w", err)
	}
	offerings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CourseOffering])
	if err != nil {
		return nil, fmt.Errorf("error scanning offerings: %w", err)
	}

	for _, o := range offerings {
		out[o.CourseID] = append(out[o.CourseID], o.TermCode)
	}
	return out, nil
}

// closureSQL walks prerequisite edges back from the target. The path array
// stops the walk on a cycle that slipped past the write-time check.
const closureSQL = `
WITH RECURSIVE prereqs AS (
	SELECT course_id, prereq_course_id, 1 AS depth, ARRAY[course_id, prereq_course_id] AS path
	FROM course_prereq_edges
	WHERE course_id = $1

	UNION ALL

	SELECT e.course_id, e.prereq_course_id, p.depth + 1, p.path || e.prereq_course_id
	FROM course_prereq_edges e
	INNER JOIN prereqs p ON e.course_id = p.prereq_course_id
	WHERE NOT e.prereq_course_id = ANY(p.path)
)
SELECT course_id, prereq_course_id, MAX(depth) AS depth
FROM prereqs
GROUP BY course_id, prereq_course_id
ORDER BY depth ASC, course_id ASC, prereq_course_id ASC`

// PrerequisiteClosure returns every edge reachable backwards from targetID, each
// with its longest distance from the target.
func (r *CourseRepository) PrerequisiteClosure(ctx context.Context, targetID int64) ([]models.ClosureEdge, error) {
	rows, err := r.db.Query(ctx, closureSQL, targetID)
	if err != nil {
		return nil, fmt.Errorf("error walking prerequisites: %w", err)
	}
	edges, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ClosureEdge])
	if err != nil {
		return nil, fmt.Errorf("error scanning prerequisite closure: %w", err)
	}
	return edges, nil
}

// Create inserts a course and its offerings in one transaction.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("courses").
			Columns("dept", "number", "title", "units_min", "units_max", "difficulty", "workload", "description").
			Values(course.Dept, course.Number, course.Title, course.UnitsMin, course.UnitsMax,
				course.Difficulty, course.Workload, course.Description).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
			if dberrors.IsDuplicateConstraintError(err, courseDeptNumberKey) {
				return apperrors.ErrCourseAlreadyExists
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		if len(course.TypicalTerms) == 0 {
			return nil
		}
		insert := r.sb.Insert("course_offerings").Columns("course_id", "term_code").
			Suffix("ON CONFLICT DO NOTHING")
		for _, t := range course.TypicalTerms {
			insert = insert.Values(course.ID, t)
		}
		sql, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating offerings: %w", err)
		}
		return nil
	})
}

// AddPrerequisite inserts one edge of the prerequisite graph.
func (r *CourseRepository) AddPrerequisite(ctx context.Context, edge models.PrereqEdge) error {
	sql, args, err := r.sb.Insert("course_prereq_edges").
		Columns("course_id", "prereq_course_id").
		Values(edge.CourseID, edge.PrereqCourseID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, ""):
			return apperrors.ErrPrerequisiteExists
		case dberrors.IsForeignKeyError(err):
			return apperrors.ErrCourseNotFound
		case dberrors.IsCheckViolation(err):
			return apperrors.ErrPrerequisiteCycle
		}
		return fmt.Errorf("error adding prerequisite: %w", err)
	}
	return nil
}
