package model

import "time"

// Comment is one entry in the grading conversation under a mark.
// Comments are append-only: there is no update or delete for any role.
type Comment struct {
	ID        int       `json:"id"`
	MarkID    int       `json:"mark_id"`
	CreatorID int       `json:"creator_id"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the payload for adding a comment to a mark.
type CreateCommentRequest struct {
	Text string `json:"comment_text" binding:"required,min=1,max=1024"`
}
