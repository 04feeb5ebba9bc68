package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teacherhub/course-service/internal/models"
	"github.com/teacherhub/course-service/internal/repositories"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course business logic.
type CourseService interface {
	// Method GetForTeacher retrieve all courses for a teacher using the configured repository.
	//
	// The returned list is never nil; a teacher without courses yields an empty list.
	GetForTeacher(ctx context.Context, teacherID int) ([]models.Course, error)
	// Method Get retrieve a single course by its (teacher_id, course_id) pair.
	//
	// Returns repositories.ErrCourseNotFound when no course matches both keys.
	Get(ctx context.Context, teacherID, courseID int) (*models.Course, error)
	// Method Create validate a create request and insert the course.
	//
	// Returns a *models.ValidationError for malformed input without touching storage.
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// Method Update validate a partial update request and apply it, returning the post-update course.
	//
	// Returns a *models.ValidationError for malformed input and
	// repositories.ErrCourseNotFound when no course matches both keys.
	Update(ctx context.Context, teacherID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error)
	// Method Delete remove a course and return the deleted entity.
	//
	// Returns repositories.ErrCourseNotFound when no course matches both keys.
	Delete(ctx context.Context, teacherID, courseID int) (*models.Course, error)
}

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{teacherID}", h.GetForTeacher)
		r.Get("/{teacherID}/{courseID}", h.Get)
		r.Put("/{teacherID}/{courseID}", h.Update)
		r.Delete("/{teacherID}/{courseID}", h.Delete)
	})
}

// pathID parses an integer URL parameter; ok is false after an error response was sent
func (h *CourseHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// respondCourseError maps service errors to HTTP responses
func (h *CourseHandler) respondCourseError(w http.ResponseWriter, action string, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.respondError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, repositories.ErrCourseNotFound):
		h.respondError(w, http.StatusNotFound, "course not found")
	default:
		h.logger.Error("failed to "+action, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// Create handles POST /courses/
// @Summary Create a course
// @Description Create a new course for a teacher
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CreateCourseRequest true "Course creation request"
// @Success 200 {object} models.Course "Created course with storage-assigned id and timestamp"
// @Failure 400 {object} map[string]string "Invalid request body or validation failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondCourseError(w, "create course", err)
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// GetForTeacher handles GET /courses/{teacherID}
// @Summary List courses for a teacher
// @Description Get all courses belonging to a teacher, ordered by id
// @Tags courses
// @Produce json
// @Param teacherID path int true "Teacher ID"
// @Success 200 {array} models.Course "List of courses (possibly empty)"
// @Failure 400 {object} map[string]string "Invalid teacher ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{teacherID} [get]
func (h *CourseHandler) GetForTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.pathID(w, r, "teacherID")
	if !ok {
		return
	}

	courses, err := h.service.GetForTeacher(r.Context(), teacherID)
	if err != nil {
		h.respondCourseError(w, "list courses", err)
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// Get handles GET /courses/{teacherID}/{courseID}
// @Summary Get course details
// @Description Get a single course by teacher ID and course ID
// @Tags courses
// @Produce json
// @Param teacherID path int true "Teacher ID"
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.Course "Course details"
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{teacherID}/{courseID} [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.pathID(w, r, "teacherID")
	if !ok {
		return
	}
	courseID, ok := h.pathID(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.service.Get(r.Context(), teacherID, courseID)
	if err != nil {
		h.respondCourseError(w, "get course", err)
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// Update handles PUT /courses/{teacherID}/{courseID}
// @Summary Update a course
// @Description Apply a partial update to a course; absent fields are left unchanged
// @Tags courses
// @Accept json
// @Produce json
// @Param teacherID path int true "Teacher ID"
// @Param courseID path int true "Course ID"
// @Param request body models.UpdateCourseRequest true "Course update request"
// @Success 200 {object} models.Course "Updated course"
// @Failure 400 {object} map[string]string "Invalid request body or validation failure"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{teacherID}/{courseID} [put]
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.pathID(w, r, "teacherID")
	if !ok {
		return
	}
	courseID, ok := h.pathID(w, r, "courseID")
	if !ok {
		return
	}

	var req models.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.Update(r.Context(), teacherID, courseID, &req)
	if err != nil {
		h.respondCourseError(w, "update course", err)
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /courses/{teacherID}/{courseID}
// @Summary Delete a course
// @Description Remove a course and return the deleted entity
// @Tags courses
// @Produce json
// @Param teacherID path int true "Teacher ID"
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.Course "Deleted course"
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{teacherID}/{courseID} [delete]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.pathID(w, r, "teacherID")
	if !ok {
		return
	}
	courseID, ok := h.pathID(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.service.Delete(r.Context(), teacherID, courseID)
	if err != nil {
		h.respondCourseError(w, "delete course", err)
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}
