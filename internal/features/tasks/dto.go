package tasks

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	WorkspaceID        uuid.UUID    `json:"workspaceId"        binding:"required"`
	ChannelID          *uuid.UUID   `json:"channelId"`
	Title              string       `json:"title"              binding:"required,min=1,max=500"`
	Description        *string      `json:"description"`
	AssignedToMemberID *uuid.UUID   `json:"assignedToMemberId"`
	Priority           TaskPriority `json:"priority"`
	DueDate            *time.Time   `json:"dueDate"`
}

type UpdateTaskRequestDTO struct {
	Title              *string       `json:"title"`
	Description        *string       `json:"description"`
	AssignedToMemberID *uuid.UUID    `json:"assignedToMemberId"`
	Priority           *TaskPriority `json:"priority"`
	DueDate            *time.Time    `json:"dueDate"`
}

type UpdateTaskStatusRequestDTO struct {
	Status TaskStatus `json:"status" binding:"required"`
}

type AddTaskCommentRequestDTO struct {
	Body string `json:"body" binding:"required,min=1"`
}

type TaskResponseDTO struct {
	Task

	// Creator fields are null when the member was removed after creating.
	CreatedByName  *string `json:"createdByName"  gorm:"column:created_by_name"`
	CreatedByEmail *string `json:"createdByEmail" gorm:"column:created_by_email"`
	AssigneeName   *string `json:"assigneeName"   gorm:"column:assignee_name"`
	AssigneeEmail  *string `json:"assigneeEmail"  gorm:"column:assignee_email"`
}

type ListTasksResponseDTO struct {
	Tasks []TaskResponseDTO `json:"tasks"`
}

type TaskCommentResponseDTO struct {
	TaskComment

	AuthorName  *string `json:"authorName"  gorm:"column:author_name"`
	AuthorEmail *string `json:"authorEmail" gorm:"column:author_email"`
}

type ListTaskCommentsResponseDTO struct {
	Comments []TaskCommentResponseDTO `json:"comments"`
}
