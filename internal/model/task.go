package model

import (
	"time"
)

// Status is the board column a task lives in.
type Status string

const (
	StatusToDo       Status = "To-Do"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

// Statuses returns the four board columns in display order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusBlocked, StatusCompleted}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Priorities returns all priorities in ascending order of urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is one unit of work as the remote service represents it. The ID is
// server-assigned and immutable; Owner, CreatedAt and UpdatedAt are
// server-authoritative and never set locally.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Owner       *User      `json:"owner,omitempty"`
	AssignedTo  []User     `json:"assignedTo,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskDraft is the client-built body for task creation. The server assigns
// the identity, owner and timestamps.
type TaskDraft struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  []string   `json:"assignedTo,omitempty"`
}

// TaskUpdate is a partial task body. Nil fields are left untouched by the
// server and by the optimistic merge.
type TaskUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  []string   `json:"assignedTo,omitempty"`
}

// ApplyTo merges the update into t field by field, overwriting only the
// fields the update carries. Server-authoritative fields are not part of an
// update and stay as they are.
func (u TaskUpdate) ApplyTo(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = u.DueDate
	}
	if u.AssignedTo != nil {
		assigned := make([]User, 0, len(u.AssignedTo))
		for _, id := range u.AssignedTo {
			assigned = append(assigned, User{ID: id})
		}
		t.AssignedTo = assigned
	}
}

// StatusUpdate builds the single-field update a board move issues.
func StatusUpdate(s Status) TaskUpdate {
	return TaskUpdate{Status: &s}
}
