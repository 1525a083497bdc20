package audit_logs

import (
	"testing"
	"time"

	users_testing "teamhub-backend/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetWorkspaceAuditLogs_ScopedToWorkspace(t *testing.T) {
	service := GetAuditLogService()
	user := users_testing.CreateTestUser()
	workspace1ID, workspace2ID := uuid.New(), uuid.New()

	service.WriteAuditLog("workspace1 first entry", &user.UserID, &workspace1ID)
	service.WriteAuditLog("workspace1 second entry", &user.UserID, &workspace1ID)
	service.WriteAuditLog("workspace2 entry", &user.UserID, &workspace2ID)
	service.WriteAuditLog("global entry", &user.UserID, nil)

	response, err := service.GetWorkspaceAuditLogs(
		workspace1ID,
		&GetAuditLogsRequest{Limit: 10},
	)
	require.NoError(t, err)
	require.Len(t, response.AuditLogs, 2)

	for _, log := range response.AuditLogs {
		assert.Equal(t, &workspace1ID, log.WorkspaceID)
	}

	messages := []string{response.AuditLogs[0].Message, response.AuditLogs[1].Message}
	assert.Contains(t, messages, "workspace1 first entry")
	assert.Contains(t, messages, "workspace1 second entry")
}

func Test_GetWorkspaceAuditLogs_PaginationAndBeforeDate(t *testing.T) {
	service := GetAuditLogService()
	user := users_testing.CreateTestUser()
	workspaceID := uuid.New()

	service.WriteAuditLog("entry one", &user.UserID, &workspaceID)
	service.WriteAuditLog("entry two", &user.UserID, &workspaceID)
	service.WriteAuditLog("entry three", &user.UserID, &workspaceID)

	limited, err := service.GetWorkspaceAuditLogs(
		workspaceID,
		&GetAuditLogsRequest{Limit: 1},
	)
	require.NoError(t, err)
	assert.Len(t, limited.AuditLogs, 1)
	assert.Equal(t, int64(3), limited.Total)
	assert.Equal(t, 1, limited.Limit)

	beforeTime := time.Now().UTC().Add(-1 * time.Minute)
	filtered, err := service.GetWorkspaceAuditLogs(
		workspaceID,
		&GetAuditLogsRequest{Limit: 10, BeforeDate: &beforeTime},
	)
	require.NoError(t, err)
	assert.Empty(t, filtered.AuditLogs)
}
