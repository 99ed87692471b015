package model

import "time"

// Lecture belongs to exactly one course, set at creation.
type Lecture struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	CourseID     int       `json:"course_id"`
	CreatorID    int       `json:"creator_id"`
	Presentation *string   `json:"presentation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateLectureRequest is the payload for creating or updating a lecture.
type CreateLectureRequest struct {
	Title string `json:"title" binding:"required,min=1,max=64"`
}
