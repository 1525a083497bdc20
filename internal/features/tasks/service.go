package tasks

import (
	"fmt"
	"time"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_models "teamhub-backend/internal/features/users/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository        *TaskRepository
	taskCommentRepository *TaskCommentRepository
	workspaceService      *workspaces_services.WorkspaceService
	auditLogService       *audit_logs.AuditLogService
	revisionTracker       *revisions.Tracker
}

func (s *TaskService) CreateTask(
	request *CreateTaskRequestDTO,
	user *users_models.User,
) (*Task, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	priority := request.Priority
	if priority == "" {
		priority = TaskPriorityMedium
	}

	task := &Task{
		ID:                 uuid.New(),
		WorkspaceID:        request.WorkspaceID,
		ChannelID:          request.ChannelID,
		Title:              request.Title,
		Description:        request.Description,
		CreatedByMemberID:  member.ID,
		AssignedToMemberID: request.AssignedToMemberID,
		Status:             TaskStatusNotStarted,
		Priority:           priority,
		DueDate:            request.DueDate,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.taskRepository.Save(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.revisionTracker.Bump("tasks", task.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task created: %s", task.Title),
		&user.ID,
		&task.WorkspaceID,
	)

	return task, nil
}

func (s *TaskService) GetTasks(
	workspaceID uuid.UUID,
	status *TaskStatus,
	user *users_models.User,
) (*ListTasksResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListTasksResponseDTO{Tasks: []TaskResponseDTO{}}, nil
	}

	if status != nil && !status.IsValid() {
		return nil, apperrors.InvalidArg("invalid task status")
	}

	tasksList, err := s.taskRepository.FindViewsByWorkspaceID(workspaceID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return &ListTasksResponseDTO{Tasks: tasksList}, nil
}

// UpdateTask applies the non-nil fields of the request. Any workspace
// member may edit any task, not just its creator or assignee.
func (s *TaskService) UpdateTask(
	taskID uuid.UUID,
	request *UpdateTaskRequestDTO,
	user *users_models.User,
) (*Task, error) {
	task, err := s.getTaskForMember(taskID, user)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		task.Title = *request.Title
	}
	if request.Description != nil {
		task.Description = request.Description
	}
	if request.AssignedToMemberID != nil {
		assignee, err := s.workspaceService.GetMemberByID(*request.AssignedToMemberID)
		if err != nil {
			return nil, err
		}
		if assignee == nil || assignee.WorkspaceID != task.WorkspaceID {
			return nil, apperrors.NotFound("assignee not found in this workspace")
		}
		task.AssignedToMemberID = request.AssignedToMemberID
	}
	if request.Priority != nil {
		task.Priority = *request.Priority
	}
	if request.DueDate != nil {
		task.DueDate = request.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.taskRepository.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.revisionTracker.Bump("tasks", task.WorkspaceID)

	return task, nil
}

func (s *TaskService) UpdateTaskStatus(
	taskID uuid.UUID,
	request *UpdateTaskStatusRequestDTO,
	user *users_models.User,
) (*Task, error) {
	if !request.Status.IsValid() {
		return nil, apperrors.InvalidArg("invalid task status")
	}

	task, err := s.getTaskForMember(taskID, user)
	if err != nil {
		return nil, err
	}

	task.ApplyStatus(request.Status)
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepository.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.revisionTracker.Bump("tasks", task.WorkspaceID)

	return task, nil
}

func (s *TaskService) DeleteTask(taskID uuid.UUID, user *users_models.User) error {
	task, err := s.taskRepository.FindByID(taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return apperrors.NotFound("task not found")
	}

	if _, err := s.workspaceService.RequireAdmin(user.ID, task.WorkspaceID); err != nil {
		return err
	}

	// Comments first so no rows are left referencing a deleted task.
	if err := s.taskCommentRepository.DeleteByTaskID(taskID); err != nil {
		return fmt.Errorf("failed to delete task comments: %w", err)
	}

	if err := s.taskRepository.DeleteByID(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.revisionTracker.Bump("tasks", task.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task deleted: %s", task.Title),
		&user.ID,
		&task.WorkspaceID,
	)

	return nil
}

// AddComment does not touch the task's updatedAt, commenting is not an
// edit of the task itself.
func (s *TaskService) AddComment(
	taskID uuid.UUID,
	request *AddTaskCommentRequestDTO,
	user *users_models.User,
) (*TaskComment, error) {
	task, err := s.taskRepository.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, apperrors.NotFound("task not found")
	}

	member, err := s.workspaceService.RequireMember(user.ID, task.WorkspaceID)
	if err != nil {
		return nil, err
	}

	comment := &TaskComment{
		ID:        uuid.New(),
		TaskID:    taskID,
		MemberID:  member.ID,
		Body:      request.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.taskCommentRepository.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return comment, nil
}

// GetComments has no membership check, comments of a known task id are
// readable by any signed-in user.
func (s *TaskService) GetComments(taskID uuid.UUID) (*ListTaskCommentsResponseDTO, error) {
	comments, err := s.taskCommentRepository.FindViewsByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return &ListTaskCommentsResponseDTO{Comments: comments}, nil
}

func (s *TaskService) getTaskForMember(
	taskID uuid.UUID,
	user *users_models.User,
) (*Task, error) {
	task, err := s.taskRepository.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, apperrors.NotFound("task not found")
	}

	if _, err := s.workspaceService.RequireMember(user.ID, task.WorkspaceID); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	taskIDs, err := s.taskRepository.FindIDsByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if err := s.taskCommentRepository.DeleteByTaskIDs(taskIDs); err != nil {
		return fmt.Errorf("failed to delete task comments: %w", err)
	}

	return s.taskRepository.DeleteByWorkspaceID(workspaceID)
}
