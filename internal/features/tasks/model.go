package tasks

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDelayed    TaskStatus = "delayed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted, TaskStatusDelayed:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

type Task struct {
	ID                 uuid.UUID    `json:"id"                 gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID        uuid.UUID    `json:"workspaceId"        gorm:"column:workspace_id;type:uuid;not null"`
	ChannelID          *uuid.UUID   `json:"channelId"          gorm:"column:channel_id;type:uuid"`
	Title              string       `json:"title"              gorm:"column:title;type:text;not null"`
	Description        *string      `json:"description"        gorm:"column:description;type:text"`
	CreatedByMemberID  uuid.UUID    `json:"createdByMemberId"  gorm:"column:created_by_member_id;type:uuid;not null"`
	AssignedToMemberID *uuid.UUID   `json:"assignedToMemberId" gorm:"column:assigned_to_member_id;type:uuid"`
	Status             TaskStatus   `json:"status"             gorm:"column:status;type:text;not null"`
	Priority           TaskPriority `json:"priority"           gorm:"column:priority;type:text;not null"`
	DueDate            *time.Time   `json:"dueDate"            gorm:"column:due_date;type:timestamp with time zone"`
	CompletedAt        *time.Time   `json:"completedAt"        gorm:"column:completed_at;type:timestamp with time zone"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamp with time zone;not null;default:now()"`
}

func (t *Task) TableName() string {
	return "tasks"
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.New("task title is required")
	}
	if !t.Status.IsValid() {
		return errors.New("invalid task status")
	}
	if !t.Priority.IsValid() {
		return errors.New("invalid task priority")
	}
	return nil
}

// ApplyStatus sets the status and keeps completedAt in lockstep: it is
// set exactly when the task transitions to completed and cleared on any
// other status.
func (t *Task) ApplyStatus(status TaskStatus) {
	t.Status = status

	if status == TaskStatusCompleted {
		now := time.Now().UTC()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

type TaskComment struct {
	ID       uuid.UUID `json:"id"       gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	TaskID   uuid.UUID `json:"taskId"   gorm:"column:task_id;type:uuid;not null"`
	MemberID uuid.UUID `json:"memberId" gorm:"column:member_id;type:uuid;not null"`
	Body     string    `json:"body"     gorm:"column:body;type:text;not null"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
}

func (c *TaskComment) TableName() string {
	return "task_comments"
}
