package domain

import (
	"errors"
	"time"
)

// Teacher is a studio instructor sessions can be scheduled with.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var ErrTeacherNotFound = errors.New("teacher not found")
