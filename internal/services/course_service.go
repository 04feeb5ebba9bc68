package services

import (
	"context"

	"github.com/teacherhub/course-service/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for course table data access
type CourseRepository interface {
	// Method GetByTeacherID retrieve all courses belonging to a teacher, ordered by id.
	//
	// A teacher without courses yields an empty list together with a "nil" error.
	GetByTeacherID(ctx context.Context, teacherID int) ([]models.Course, error)
	// Method GetByID retrieve a single course by its (teacher_id, course_id) pair.
	//
	// Returns repositories.ErrCourseNotFound when no row matches both keys.
	GetByID(ctx context.Context, teacherID, courseID int) (*models.Course, error)
	// Method Create insert a new course and fill in the storage-assigned id and timestamp.
	Create(ctx context.Context, course *models.Course) error
	// Method Update apply the present fields of a partial update and return the post-update course.
	//
	// Returns repositories.ErrCourseNotFound when no row matches both keys.
	Update(ctx context.Context, teacherID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error)
	// Method Delete remove a course and return the deleted row.
	//
	// Returns repositories.ErrCourseNotFound when no row matches both keys.
	Delete(ctx context.Context, teacherID, courseID int) (*models.Course, error)
}

type courseService struct {
	repo   CourseRepository
	logger *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repo CourseRepository, logger *zap.Logger) *courseService {
	return &courseService{
		repo:   repo,
		logger: logger,
	}
}

// GetForTeacher retrieves all courses for a teacher.
// The result is never nil so an empty list serializes as [] rather than null.
func (s *courseService) GetForTeacher(ctx context.Context, teacherID int) ([]models.Course, error) {
	courses, err := s.repo.GetByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Get retrieves a single course
func (s *courseService) Get(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	return s.repo.GetByID(ctx, teacherID, courseID)
}

// Create validates a create request and inserts the course.
// Validation failures are reported before any storage call.
func (s *courseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	course := models.Course{
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Description: req.Description,
		Format:      req.Format,
		Structure:   req.Structure,
		Duration:    req.Duration,
		Price:       req.Price,
		Language:    req.Language,
		Level:       req.Level,
	}

	if err := s.repo.Create(ctx, &course); err != nil {
		return nil, err
	}

	s.logger.Info("course created",
		zap.Int("course_id", course.ID),
		zap.Int("teacher_id", course.TeacherID),
	)
	return &course, nil
}

// Update validates a partial update request and applies it
func (s *courseService) Update(ctx context.Context, teacherID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, teacherID, courseID, req)
}

// Delete removes a course and returns the deleted entity
func (s *courseService) Delete(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	course, err := s.repo.Delete(ctx, teacherID, courseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("course deleted",
		zap.Int("course_id", courseID),
		zap.Int("teacher_id", teacherID),
	)
	return course, nil
}
