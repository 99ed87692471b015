package authz

import "github.com/edukit/classroom-backend/internal/model"

// FilterHomework narrows a hometask's submission list by the
// requester's role: teachers see every record, students only their
// own. Mark and comment lists are intentionally not filtered this way;
// once graded, the conversation is visible in full to the submitting
// student and all course teachers.
func FilterHomework(role Role, userID int, records []model.CompletedHomework) []model.CompletedHomework {
	if role == RoleTeacher {
		return records
	}
	if role != RoleStudent {
		return nil
	}

	own := make([]model.CompletedHomework, 0, len(records))
	for _, r := range records {
		if r.CreatorID == userID {
			own = append(own, r)
		}
	}
	return own
}
