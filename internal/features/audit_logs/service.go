package audit_logs

import (
	"fmt"
	"log/slog"
	"time"

	"teamhub-backend/internal/config"
	users_services "teamhub-backend/internal/features/users/services"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog records an audit entry. Failures are logged and
// swallowed so auditing never breaks the calling operation.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.auditLogRepository.CreateAuditLog(auditLog); err != nil {
		s.logger.Error("failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if request.Limit <= 0 {
		request.Limit = 100
	}
	if request.Limit > 1000 {
		request.Limit = 1000
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	logs, total, err := s.auditLogRepository.GetWorkspaceAuditLogs(workspaceID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}

func (s *AuditLogService) PruneOldAuditLogs() {
	retentionDays := config.GetEnv().AuditLogRetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	removed, err := s.auditLogRepository.DeleteOlderThan(cutoff)
	if err != nil {
		s.logger.Error("failed to prune audit logs", "error", err)
		return
	}

	if removed > 0 {
		s.logger.Info("pruned old audit logs", "removed", removed, "cutoff", cutoff)
	}
}

// StartRetentionSchedule prunes expired audit logs once a day.
func (s *AuditLogService) StartRetentionSchedule(scheduler *cron.Cron) error {
	_, err := scheduler.AddFunc("0 3 * * *", s.PruneOldAuditLogs)

	return err
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
