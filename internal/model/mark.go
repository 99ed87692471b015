package model

import "time"

// Mark is a grade for a completed homework. At most one mark exists per
// submission; the database enforces the 1:1 relation with a unique
// constraint on completed_homework_id.
type Mark struct {
	ID                  int       `json:"id"`
	CompletedHomeworkID int       `json:"completed_homework_id"`
	CreatorID           int       `json:"creator_id"`
	Value               int       `json:"mark"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MarkDetail extends Mark with its comment thread.
type MarkDetail struct {
	Mark
	Comments []Comment `json:"comments"`
}

// CreateMarkRequest is the payload for grading a submission.
type CreateMarkRequest struct {
	Value int `json:"mark" binding:"required,min=1,max=100"`
}
