package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the format of task due dates
const TimestampLayout = "2006-01-02 15:04:05"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a maintenance or housekeeping job, optionally assigned to a user
type Task struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"due_date"`
	Status       TaskStatus `json:"status"`
	UserAssigned *int64     `json:"user_assigned"`
}

type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	DueDate      string `json:"due_date" binding:"required"`
	Status       string `json:"status"`
	UserAssigned *int64 `json:"user_assigned"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *string    `json:"due_date,omitempty"`
	Status       *string    `json:"status,omitempty"`
	UserAssigned NullableID `json:"user_assigned"`
}

// NullableID tells an absent JSON field (Set false) from an explicit null
// (Set true, ID nil).
type NullableID struct {
	Set bool
	ID  *int64
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.ID = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	n.ID = &id
	return nil
}
