package audit_logs

import (
	"teamhub-backend/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
