package model

import "time"

// Course is the top-level container. The creator is set once and is
// always a member of the teacher set.
type Course struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatorID   int       `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseDetail extends Course with membership and lecture titles for
// the detail endpoint.
type CourseDetail struct {
	Course
	Teachers []User   `json:"teachers"`
	Students []User   `json:"students"`
	Lectures []string `json:"lectures"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=250"`
	Description string `json:"description" binding:"required,max=256"`
}

// UpdateCourseRequest is the payload for updating a course. Student and
// teacher ids are appended to the membership sets, never removed,
// matching the append-only enrollment semantics.
type UpdateCourseRequest struct {
	Title       string `json:"title" binding:"omitempty,min=1,max=250"`
	Description string `json:"description" binding:"omitempty,max=256"`
	Students    []int  `json:"students" binding:"omitempty,dive,min=1"`
	Teachers    []int  `json:"teachers" binding:"omitempty,dive,min=1"`
}
