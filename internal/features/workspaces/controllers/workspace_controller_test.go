package workspaces_controllers

import (
	"net/http"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateWorkspace_CreatorBecomesAdminWithJoinCode(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	user := users_testing.CreateTestUser()

	request := workspaces_dto.CreateWorkspaceRequestDTO{Name: "Engineering"}

	var response workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Engineering", response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, user.UserID, response.OwnerUserID)
	assert.NotNil(t, response.JoinCode)
	assert.NotNil(t, response.UserRole)
	assert.Equal(t, workspaces_enums.MemberRoleAdmin, *response.UserRole)
}

func Test_JoinWorkspace_WithValidCode_AddsMemberRole(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	joiner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Support", owner, router)

	request := workspaces_dto.JoinWorkspaceRequestDTO{JoinCode: *workspace.JoinCode}

	var response workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/join",
		"Bearer "+joiner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, workspace.ID, response.ID)

	member := workspaces_testing.GetMemberRow(joiner.UserID, workspace.ID)
	assert.Equal(t, workspaces_enums.MemberRoleMember, member.Role)
}

func Test_JoinWorkspace_Twice_ReturnsConflict(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	joiner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Sales", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, joiner, router)

	request := workspaces_dto.JoinWorkspaceRequestDTO{JoinCode: *workspace.JoinCode}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/join",
		"Bearer "+joiner.Token,
		request,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "already a member")
}

func Test_JoinWorkspace_WithUnknownCode_ReturnsNotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	user := users_testing.CreateTestUser()

	request := workspaces_dto.JoinWorkspaceRequestDTO{JoinCode: "zzzzzz"}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/join",
		"Bearer "+user.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_GetWorkspace_AsNonMember_ReturnsNotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Private", owner, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String(),
		"Bearer "+outsider.Token,
		http.StatusNotFound,
	)
}

func Test_GetWorkspace_JoinCodeHiddenFromPlainMembers(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Design", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var response workspaces_dto.WorkspaceResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Nil(t, response.JoinCode)
	assert.Equal(t, workspaces_enums.MemberRoleMember, *response.UserRole)
}

func Test_NewJoinCode_InvalidatesOldCode(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	joiner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Rotations", owner, router)
	oldCode := *workspace.JoinCode

	var rotated workspaces_dto.NewJoinCodeResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/join-code",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&rotated,
	)

	assert.NotEqual(t, oldCode, rotated.JoinCode)

	request := workspaces_dto.JoinWorkspaceRequestDTO{JoinCode: oldCode}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/join",
		"Bearer "+joiner.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_DeleteWorkspace_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Protected", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
}
