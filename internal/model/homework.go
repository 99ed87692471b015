package model

import "time"

// CompletedHomework is a student's submission for a hometask. The
// creator must be an enrolled student of the owning course at
// submission time; the authorization engine enforces this.
type CompletedHomework struct {
	ID         int       `json:"id"`
	HometaskID int       `json:"hometask_id"`
	CreatorID  int       `json:"creator_id"`
	Link       string    `json:"link"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SubmitHomeworkRequest is the payload for submitting or updating a solution.
type SubmitHomeworkRequest struct {
	Link string `json:"link" binding:"required,url,max=200"`
}
