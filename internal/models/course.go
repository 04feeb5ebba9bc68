package models

import (
	"fmt"
	"strings"
	"time"
)

// Course represents a course owned by a teacher
type Course struct {
	TeacherID   int        `json:"teacher_id"`
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Time        *time.Time `json:"time,omitempty"`
	Description *string    `json:"description,omitempty"`
	Format      *string    `json:"format,omitempty"`
	Structure   *string    `json:"structure,omitempty"`
	Duration    *string    `json:"duration,omitempty"`
	Price       *int       `json:"price,omitempty"`
	Language    *string    `json:"language,omitempty"`
	Level       *string    `json:"level,omitempty"`
}

// CreateCourseRequest represents a request to create a course.
// ID and Time are assigned by storage on insert.
type CreateCourseRequest struct {
	TeacherID   int     `json:"teacher_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Format      *string `json:"format,omitempty"`
	Structure   *string `json:"structure,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Price       *int    `json:"price,omitempty"`
	Language    *string `json:"language,omitempty"`
	Level       *string `json:"level,omitempty"`
}

// UpdateCourseRequest represents a request to update a course (partial update).
// A present field overwrites the stored column, an absent field leaves it unchanged.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Format      *string `json:"format,omitempty"`
	Structure   *string `json:"structure,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Price       *int    `json:"price,omitempty"`
	Language    *string `json:"language,omitempty"`
	Level       *string `json:"level,omitempty"`
}

// ValidationError describes a malformed or missing field in a request payload
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks required fields of a create request
func (r *CreateCourseRequest) Validate() error {
	if r.TeacherID <= 0 {
		return &ValidationError{Field: "teacher_id", Message: "must be a positive integer"}
	}
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.Price != nil && *r.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// Validate checks the present fields of a partial update request.
// A request with no fields present is valid and leaves the course unchanged.
func (r *UpdateCourseRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.Price != nil && *r.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}
