package notes

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

func Test_GetNotes_PinnedFirstThenNewest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetNoteController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("NoteOrdering", owner, router)

	var created []Note
	for _, title := range []string{"oldest", "middle", "newest"} {
		var note Note
		test_utils.MakePostRequestAndUnmarshal(
			t,
			router,
			"/api/v1/notes",
			"Bearer "+owner.Token,
			CreateNoteRequestDTO{WorkspaceID: workspace.ID, Title: title, Content: "body"},
			http.StatusOK,
			&note,
		)
		created = append(created, note)
	}

	// pin the oldest note so it jumps ahead of the unpinned ones
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/notes/"+created[0].ID.String()+"/pin",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
	)

	var response ListNotesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/notes",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Notes, 3)
	assert.Equal(t, "oldest", response.Notes[0].Title)
	assert.True(t, response.Notes[0].IsPinned)
	assert.Equal(t, "newest", response.Notes[1].Title)
	assert.Equal(t, "middle", response.Notes[2].Title)
}

func Test_CreateNote_StartsUnpinned(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetNoteController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("NoteDefaults", owner, router)

	var note Note
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notes",
		"Bearer "+owner.Token,
		CreateNoteRequestDTO{
			WorkspaceID: workspace.ID,
			Title:       "Runbook",
			Content:     "Steps to deploy",
			Tags:        []string{"ops", "deploy"},
		},
		http.StatusOK,
		&note,
	)

	assert.False(t, note.IsPinned)
	assert.Equal(t, []string{"ops", "deploy"}, []string(note.Tags))
}

func Test_TogglePin_FlipsBothWays(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetNoteController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("NotePinning", owner, router)

	var note Note
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notes",
		"Bearer "+owner.Token,
		CreateNoteRequestDTO{WorkspaceID: workspace.ID, Title: "Flip", Content: "me"},
		http.StatusOK,
		&note,
	)

	var pinned Note
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notes/"+note.ID.String()+"/pin",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&pinned,
	)
	assert.True(t, pinned.IsPinned)

	var unpinned Note
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notes/"+note.ID.String()+"/pin",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&unpinned,
	)
	assert.False(t, unpinned.IsPinned)
}

func Test_DeleteNote_OnlyCreatorOrAdmin(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetNoteController(),
	)
	owner := users_testing.CreateTestUser()
	author := users_testing.CreateTestUser()
	bystander := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("NoteOwnership", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, author, router)
	workspaces_testing.AddMemberToWorkspace(workspace, bystander, router)

	var note Note
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notes",
		"Bearer "+author.Token,
		CreateNoteRequestDTO{WorkspaceID: workspace.ID, Title: "Mine", Content: "keep out"},
		http.StatusOK,
		&note,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/notes/"+note.ID.String(),
		"Bearer "+bystander.Token,
		http.StatusForbidden,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/notes/"+note.ID.String(),
		"Bearer "+author.Token,
		http.StatusOK,
	)
}
