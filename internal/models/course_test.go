package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateCourseRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		req           CreateCourseRequest
		expectedError bool
		expectedField string
	}{
		{
			name: "valid minimal request",
			req:  CreateCourseRequest{TeacherID: 1, Name: "Rust 101"},
		},
		{
			name: "valid request with optional fields",
			req: CreateCourseRequest{
				TeacherID:   1,
				Name:        "Rust 101",
				Description: strPtr("an introduction"),
				Price:       intPtr(0),
				Language:    strPtr("English"),
				Level:       strPtr("Beginner"),
			},
		},
		{
			name:          "missing teacher id",
			req:           CreateCourseRequest{Name: "Rust 101"},
			expectedError: true,
			expectedField: "teacher_id",
		},
		{
			name:          "negative teacher id",
			req:           CreateCourseRequest{TeacherID: -1, Name: "Rust 101"},
			expectedError: true,
			expectedField: "teacher_id",
		},
		{
			name:          "empty name",
			req:           CreateCourseRequest{TeacherID: 1},
			expectedError: true,
			expectedField: "name",
		},
		{
			name:          "blank name",
			req:           CreateCourseRequest{TeacherID: 1, Name: "   "},
			expectedError: true,
			expectedField: "name",
		},
		{
			name:          "negative price",
			req:           CreateCourseRequest{TeacherID: 1, Name: "Rust 101", Price: intPtr(-5)},
			expectedError: true,
			expectedField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.expectedError {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.expectedField, vErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCourseRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		req           UpdateCourseRequest
		expectedError bool
		expectedField string
	}{
		{
			name: "all fields absent is valid",
			req:  UpdateCourseRequest{},
		},
		{
			name: "valid partial update",
			req:  UpdateCourseRequest{Name: strPtr("Updated"), Price: intPtr(100)},
		},
		{
			name:          "blank name",
			req:           UpdateCourseRequest{Name: strPtr("  ")},
			expectedError: true,
			expectedField: "name",
		},
		{
			name:          "negative price",
			req:           UpdateCourseRequest{Price: intPtr(-1)},
			expectedError: true,
			expectedField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.expectedError {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.expectedField, vErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "must not be empty"}
	assert.Equal(t, "name: must not be empty", err.Error())
}
