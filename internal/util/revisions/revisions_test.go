package revisions

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_ETag_ChangesOnBump(t *testing.T) {
	tracker := NewTracker()
	workspaceID := uuid.New()

	before := tracker.ETag("channels", workspaceID)
	tracker.Bump("channels", workspaceID)
	after := tracker.ETag("channels", workspaceID)

	assert.NotEqual(t, before, after)
	assert.Equal(t, after, tracker.ETag("channels", workspaceID))
}

func Test_ETag_IsScopedPerTableAndWorkspace(t *testing.T) {
	tracker := NewTracker()
	workspaceA := uuid.New()
	workspaceB := uuid.New()

	tasksBefore := tracker.ETag("tasks", workspaceA)
	otherWorkspaceBefore := tracker.ETag("tasks", workspaceB)
	notesBefore := tracker.ETag("notes", workspaceA)

	tracker.Bump("tasks", workspaceA)

	assert.NotEqual(t, tasksBefore, tracker.ETag("tasks", workspaceA))
	assert.Equal(t, otherWorkspaceBefore, tracker.ETag("tasks", workspaceB))
	assert.Equal(t, notesBefore, tracker.ETag("notes", workspaceA))
}

func Test_Bump_IsSafeForConcurrentUse(t *testing.T) {
	tracker := NewTracker()
	workspaceID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Bump("messages", workspaceID)
			_ = tracker.ETag("messages", workspaceID)
		}()
	}
	wg.Wait()

	assert.Equal(t, "\"messages-50\"", tracker.ETag("messages", workspaceID))
}
