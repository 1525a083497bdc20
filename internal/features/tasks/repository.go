package tasks

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub-backend/internal/storage"
)

type TaskRepository struct{}

const taskViewSelect = `t.*,
	cu.name as created_by_name,
	cu.email as created_by_email,
	au.name as assignee_name,
	au.email as assignee_email`

func (r *TaskRepository) Save(task *Task) error {
	return storage.GetDb().Save(task).Error
}

func (r *TaskRepository) FindByID(id uuid.UUID) (*Task, error) {
	var task Task
	if err := storage.GetDb().Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindViewsByWorkspaceID(
	workspaceID uuid.UUID,
	status *TaskStatus,
) ([]TaskResponseDTO, error) {
	query := storage.GetDb().
		Table("tasks t").
		Select(taskViewSelect).
		Joins("LEFT JOIN members cm ON cm.id = t.created_by_member_id").
		Joins("LEFT JOIN users cu ON cu.id = cm.user_id").
		Joins("LEFT JOIN members am ON am.id = t.assigned_to_member_id").
		Joins("LEFT JOIN users au ON au.id = am.user_id").
		Where("t.workspace_id = ?", workspaceID)

	if status != nil {
		query = query.Where("t.status = ?", *status)
	}

	var tasks []TaskResponseDTO
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&Task{}).Error
}

func (r *TaskRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().Where("workspace_id = ?", workspaceID).Delete(&Task{}).Error
}

func (r *TaskRepository) FindIDsByWorkspaceID(workspaceID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := storage.GetDb().
		Model(&Task{}).
		Where("workspace_id = ?", workspaceID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

type TaskCommentRepository struct{}

func (r *TaskCommentRepository) Save(comment *TaskComment) error {
	return storage.GetDb().Save(comment).Error
}

func (r *TaskCommentRepository) FindViewsByTaskID(taskID uuid.UUID) ([]TaskCommentResponseDTO, error) {
	var comments []TaskCommentResponseDTO
	err := storage.GetDb().
		Table("task_comments c").
		Select("c.*, u.name as author_name, u.email as author_email").
		Joins("LEFT JOIN members m ON m.id = c.member_id").
		Joins("LEFT JOIN users u ON u.id = m.user_id").
		Where("c.task_id = ?", taskID).
		Order("c.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *TaskCommentRepository) DeleteByTaskID(taskID uuid.UUID) error {
	return storage.GetDb().Where("task_id = ?", taskID).Delete(&TaskComment{}).Error
}

func (r *TaskCommentRepository) DeleteByTaskIDs(taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return storage.GetDb().Where("task_id IN ?", taskIDs).Delete(&TaskComment{}).Error
}
