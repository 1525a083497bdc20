package audit_logs

import (
	"time"

	"teamhub-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) CreateAuditLog(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) ([]*AuditLogDTO, int64, error) {
	baseQuery := storage.GetDb().
		Table("audit_logs al").
		Where("al.workspace_id = ?", workspaceID)

	if request.BeforeDate != nil {
		baseQuery = baseQuery.Where("al.created_at < ?", request.BeforeDate)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []*AuditLogDTO
	err := baseQuery.
		Select(`al.id, al.user_id, al.workspace_id, al.message, al.created_at,
			u.email as user_email, u.name as user_name, w.name as workspace_name`).
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Joins("LEFT JOIN workspaces w ON al.workspace_id = w.id").
		Order("al.created_at DESC").
		Limit(request.Limit).
		Offset(request.Offset).
		Scan(&logs).Error

	return logs, total, err
}

func (r *AuditLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := storage.GetDb().
		Where("created_at < ?", cutoff).
		Delete(&AuditLog{})

	return result.RowsAffected, result.Error
}
