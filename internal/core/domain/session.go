package domain

import (
	"errors"
	"time"
)

// Session is a scheduled class taught by a teacher. Users holds the
// participant set: a user id appears at most once.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParticipant reports whether the user is in the participant set.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

var ErrSessionNotFound = errors.New("session not found")
var ErrAlreadyParticipating = errors.New("already participating")
var ErrNotParticipating = errors.New("not participating")
