package model

import "time"

// Hometask is an assignment attached to a lecture.
type Hometask struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LectureID   int       `json:"lecture_id"`
	CreatorID   int       `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateHometaskRequest is the payload for creating or updating a hometask.
type CreateHometaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=64"`
	Description string `json:"description" binding:"required,max=256"`
}
