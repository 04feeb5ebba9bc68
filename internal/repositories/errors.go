package repositories

import "errors"

// ErrCourseNotFound is returned when no course row matches the requested
// (teacher_id, course_id) pair. Handlers translate it into an HTTP 404
// response. A zero-row update or delete surfaces as this error, never as
// a silent success.
var ErrCourseNotFound = errors.New("course not found")
