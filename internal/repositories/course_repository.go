package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/teacherhub/course-service/internal/models"
	"go.uber.org/zap"
)

// courseColumns is the full column list of the course table, in scan order
const courseColumns = "teacher_id, id, name, time, description, format, structure, duration, price, language, level"

type courseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCourseRepository creates a new instance of the CourseRepository interface
func NewCourseRepository(db *sql.DB, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// scanCourse reads one course row in courseColumns order
func scanCourse(row interface{ Scan(dest ...any) error }, course *models.Course) error {
	return row.Scan(
		&course.TeacherID,
		&course.ID,
		&course.Name,
		&course.Time,
		&course.Description,
		&course.Format,
		&course.Structure,
		&course.Duration,
		&course.Price,
		&course.Language,
		&course.Level,
	)
}

// GetByTeacherID retrieves all courses for a teacher, ordered by id ascending.
// A teacher with no courses yields an empty list, not an error.
func (r *courseRepository) GetByTeacherID(ctx context.Context, teacherID int) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM course
		WHERE teacher_id = $1
		ORDER BY id
	`, courseColumns)

	rows, err := r.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a single course by its (teacher_id, id) pair
func (r *courseRepository) GetByID(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM course
		WHERE teacher_id = $1 AND id = $2
		LIMIT 1
	`, courseColumns)

	var course models.Course
	err := scanCourse(r.db.QueryRowContext(ctx, query, teacherID, courseID), &course)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &course, nil
}

// Create inserts a new course and fills in the storage-assigned id and timestamp
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (teacher_id, name, description, format, structure, duration, price, language, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, time
	`

	err := r.db.QueryRowContext(ctx, query,
		course.TeacherID,
		course.Name,
		course.Description,
		course.Format,
		course.Structure,
		course.Duration,
		course.Price,
		course.Language,
		course.Level,
	).Scan(&course.ID, &course.Time)
	if err != nil {
		r.logger.Error("failed to create course", zap.Error(err))
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// Update applies the present fields of a partial update and returns the
// post-update course. An update with no fields present returns the stored
// course unchanged.
func (r *courseRepository) Update(ctx context.Context, teacherID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error) {
	var setParts []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Format != nil {
		set("format", *req.Format)
	}
	if req.Structure != nil {
		set("structure", *req.Structure)
	}
	if req.Duration != nil {
		set("duration", *req.Duration)
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.Language != nil {
		set("language", *req.Language)
	}
	if req.Level != nil {
		set("level", *req.Level)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, teacherID, courseID)
	}

	args = append(args, teacherID, courseID)
	query := fmt.Sprintf(`
		UPDATE course
		SET %s
		WHERE teacher_id = $%d AND id = $%d
		RETURNING %s
	`, strings.Join(setParts, ", "), len(args)-1, len(args), courseColumns)

	var course models.Course
	err := scanCourse(r.db.QueryRowContext(ctx, query, args...), &course)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		r.logger.Error("failed to update course", zap.Error(err))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return &course, nil
}

// Delete removes a course and returns the deleted row
func (r *courseRepository) Delete(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	query := fmt.Sprintf(`
		DELETE FROM course
		WHERE teacher_id = $1 AND id = $2
		RETURNING %s
	`, courseColumns)

	var course models.Course
	err := scanCourse(r.db.QueryRowContext(ctx, query, teacherID, courseID), &course)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		r.logger.Error("failed to delete course", zap.Error(err))
		return nil, fmt.Errorf("failed to delete course: %w", err)
	}

	return &course, nil
}
