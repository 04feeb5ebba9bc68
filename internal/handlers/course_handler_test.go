package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teacherhub/course-service/internal/models"
	"github.com/teacherhub/course-service/internal/repositories"
	"go.uber.org/zap"
)

// mockCourseService is a mock implementation of CourseService
type mockCourseService struct {
	courses []models.Course
	course  *models.Course

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (m *mockCourseService) GetForTeacher(ctx context.Context, teacherID int) ([]models.Course, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.courses == nil {
		return []models.Course{}, nil
	}
	return m.courses, nil
}

func (m *mockCourseService) Get(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.course, nil
}

func (m *mockCourseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return &models.Course{
		TeacherID:   req.TeacherID,
		ID:          1,
		Name:        req.Name,
		Time:        &now,
		Description: req.Description,
		Language:    req.Language,
		Level:       req.Level,
	}, nil
}

func (m *mockCourseService) Update(ctx context.Context, teacherID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return m.course, nil
}

func (m *mockCourseService) Delete(ctx context.Context, teacherID, courseID int) (*models.Course, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return m.course, nil
}

// setupCourseRouter creates a chi router with course routes backed by the mock service
func setupCourseRouter(t *testing.T, svc *mockCourseService) chi.Router {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	r := chi.NewRouter()
	NewCourseHandler(svc, logger).RegisterRoutes(r)
	return r
}

func TestCourseHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockCourseService
		expectedStatus int
	}{
		{
			name:           "created course carries generated id",
			body:           `{"teacher_id":1,"name":"Rust 101"}`,
			svc:            &mockCourseService{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid json body",
			body:           `{"teacher_id":`,
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure",
			body:           `{"teacher_id":1,"name":""}`,
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage failure",
			body:           `{"teacher_id":1,"name":"Rust 101"}`,
			svc:            &mockCourseService{createErr: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCourseRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/courses/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var course models.Course
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
				assert.Equal(t, 1, course.TeacherID)
				assert.Equal(t, "Rust 101", course.Name)
				assert.NotZero(t, course.ID)
				assert.NotNil(t, course.Time)
			} else {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestCourseHandler_GetForTeacher(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		svc            *mockCourseService
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			path: "/courses/1",
			svc: &mockCourseService{courses: []models.Course{
				{TeacherID: 1, ID: 1, Name: "Rust 101"},
				{TeacherID: 1, ID: 2, Name: "Go 101"},
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "teacher without courses gets empty array",
			path:           "/courses/42",
			svc:            &mockCourseService{},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]\n",
		},
		{
			name:           "invalid teacher id",
			path:           "/courses/abc",
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage failure",
			path:           "/courses/1",
			svc:            &mockCourseService{listErr: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCourseRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusOK && tt.expectedBody == "" {
				var courses []models.Course
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
				assert.Len(t, courses, 2)
			}
		})
	}
}

func TestCourseHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		svc            *mockCourseService
		expectedStatus int
	}{
		{
			name:           "success",
			path:           "/courses/1/2",
			svc:            &mockCourseService{course: &models.Course{TeacherID: 1, ID: 2, Name: "Rust 101"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "course not found",
			path:           "/courses/1/9999",
			svc:            &mockCourseService{getErr: repositories.ErrCourseNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid course id",
			path:           "/courses/1/abc",
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCourseRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCourseHandler_Update(t *testing.T) {
	updated := &models.Course{TeacherID: 1, ID: 1, Name: "Updated"}

	tests := []struct {
		name           string
		body           string
		svc            *mockCourseService
		expectedStatus int
	}{
		{
			name:           "partial update returns updated course",
			body:           `{"name":"Updated"}`,
			svc:            &mockCourseService{course: updated},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty update returns stored course",
			body:           `{}`,
			svc:            &mockCourseService{course: updated},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid json body",
			body:           `{"name":`,
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure",
			body:           `{"price":-1}`,
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "course not found",
			body:           `{"name":"Updated"}`,
			svc:            &mockCourseService{updateErr: repositories.ErrCourseNotFound},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCourseRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodPut, "/courses/1/1", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var course models.Course
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
				assert.Equal(t, "Updated", course.Name)
			}
		})
	}
}

func TestCourseHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		svc            *mockCourseService
		expectedStatus int
	}{
		{
			name:           "success returns deleted course",
			path:           "/courses/1/2",
			svc:            &mockCourseService{course: &models.Course{TeacherID: 1, ID: 2, Name: "Rust 101"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "course not found",
			path:           "/courses/1/9999",
			svc:            &mockCourseService{deleteErr: repositories.ErrCourseNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid teacher id",
			path:           "/courses/abc/2",
			svc:            &mockCourseService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCourseRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var course models.Course
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
				assert.Equal(t, 2, course.ID)
			}
		})
	}
}
