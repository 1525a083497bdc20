package tasks

import (
	"net/http"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_controllers "teamhub-backend/internal/features/workspaces/controllers"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateTask_StartsAsNotStarted(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("TaskCreation", owner, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Ship the release"},
		http.StatusOK,
		&task,
	)

	assert.Equal(t, TaskStatusNotStarted, task.Status)
	assert.Equal(t, TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)
}

func Test_UpdateTaskStatus_CompletedAtFollowsStatus(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("TaskStatus", owner, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Write docs"},
		http.StatusOK,
		&task,
	)

	var completed Task
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/status",
		"Bearer "+owner.Token,
		UpdateTaskStatusRequestDTO{Status: TaskStatusCompleted},
		http.StatusOK,
		&completed,
	)

	assert.Equal(t, TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	var reopened Task
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/status",
		"Bearer "+owner.Token,
		UpdateTaskStatusRequestDTO{Status: TaskStatusInProgress},
		http.StatusOK,
		&reopened,
	)

	assert.Equal(t, TaskStatusInProgress, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
}

func Test_UpdateTask_AnyWorkspaceMemberMayEdit(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("SharedTasks", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Draft"},
		http.StatusOK,
		&task,
	)

	newTitle := "Draft reviewed"
	var updated Task
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+member.Token,
		UpdateTaskRequestDTO{Title: &newTitle},
		http.StatusOK,
		&updated,
	)

	assert.Equal(t, newTitle, updated.Title)
}

func Test_GetTasks_StatusFilterAndNonMemberEmptyList(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("TaskBoard", owner, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Open item"},
		http.StatusOK,
		&task,
	)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/status",
		"Bearer "+owner.Token,
		UpdateTaskStatusRequestDTO{Status: TaskStatusCompleted},
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Pending item"},
		http.StatusOK,
	)

	var completed ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/tasks?status=completed",
		"Bearer "+owner.Token,
		http.StatusOK,
		&completed,
	)

	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, "Open item", completed.Tasks[0].Title)

	var outsiderView ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/tasks",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&outsiderView,
	)

	assert.Empty(t, outsiderView.Tasks)
}

func Test_DeleteTask_AdminOnly_CascadesComments(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("TaskCleanup", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Doomed"},
		http.StatusOK,
		&task,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/comments",
		"Bearer "+member.Token,
		AddTaskCommentRequestDTO{Body: "looking into it"},
		http.StatusOK,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	var comments ListTaskCommentsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/comments",
		"Bearer "+owner.Token,
		http.StatusOK,
		&comments,
	)

	assert.Empty(t, comments.Comments)
}

func Test_AddComment_DoesNotTouchTaskUpdatedAt(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("TaskComments", owner, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+owner.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Quiet"},
		http.StatusOK,
		&task,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/comments",
		"Bearer "+owner.Token,
		AddTaskCommentRequestDTO{Body: "status?"},
		http.StatusOK,
	)

	stored, err := GetTaskService().taskRepository.FindByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, task.UpdatedAt.Unix(), stored.UpdatedAt.Unix())
}

func Test_LeaveWorkspace_AfterCreatingContent_KeepsTasks(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetTaskController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("DepartedAuthors", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var task Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+member.Token,
		CreateTaskRequestDTO{WorkspaceID: workspace.ID, Title: "Handover notes"},
		http.StatusOK,
		&task,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/comments",
		"Bearer "+member.Token,
		AddTaskCommentRequestDTO{Body: "done before leaving"},
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/leave",
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)

	// the departed member's task survives, listed without author details
	var tasks ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/tasks",
		"Bearer "+owner.Token,
		http.StatusOK,
		&tasks,
	)
	require.Len(t, tasks.Tasks, 1)
	assert.Equal(t, "Handover notes", tasks.Tasks[0].Title)
	assert.Nil(t, tasks.Tasks[0].CreatedByName)

	var comments ListTaskCommentsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String()+"/comments",
		"Bearer "+owner.Token,
		http.StatusOK,
		&comments,
	)
	require.Len(t, comments.Comments, 1)
	assert.Equal(t, "done before leaving", comments.Comments[0].Body)
	assert.Nil(t, comments.Comments[0].AuthorName)
}
